package gconf

import (
	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/chill-token/chill/orm"
)

// Key returns the database key under which configuration of given package
// is stored.
func Key(pkg string) []byte {
	return []byte("_c:" + pkg)
}

// Save will Validate the object, before writing it to a special "configuration"
// singleton for that package name.
func Save(db chill.KVStore, pkg string, src chill.Model) error {
	key := Key(pkg)
	if err := src.Validate(); err != nil {
		return errors.Wrapf(err, "validation: key %q", key)
	}
	raw, err := orm.Marshal(src)
	if err != nil {
		return errors.Wrapf(err, "marshal: key %q", key)
	}
	if err := db.Set(key, raw); err != nil {
		return errors.Wrapf(err, "write: key %q", key)
	}
	return nil
}

// Load reads the configuration of given package into dst. ErrNotFound is
// returned if the configuration was never saved.
func Load(db chill.ReadOnlyKVStore, pkg string, dst chill.Model) error {
	key := Key(pkg)
	raw, err := db.Get(key)
	if err != nil {
		return errors.Wrapf(err, "read: key %q", key)
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "key %q", key)
	}
	if err := orm.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(err, "unmarshal: key %q", key)
	}
	return nil
}

// Has returns true if the configuration for given package was saved.
func Has(db chill.ReadOnlyKVStore, pkg string) (bool, error) {
	ok, err := db.Has(Key(pkg))
	if err != nil {
		return false, errors.Wrapf(err, "read: key %q", Key(pkg))
	}
	return ok, nil
}
