package orm

import (
	"fmt"
	"reflect"
	"regexp"

	chill "github.com/chill-token/chill"
	"github.com/chill-token/chill/errors"
	"github.com/gogo/protobuf/proto"
)

var (
	isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString
)

// Model is implemented by any entity that can be stored using a Bucket.
type Model = chill.Model

// Bucket is a prefixed subspace of the DB that stores models of a single
// type.
//
// This is a generic building block that should generally be embedded in a
// type-safe wrapper to ensure all data is the same type.
type Bucket struct {
	name   string
	prefix []byte
	proto  Model
}

// NewBucket creates a bucket to store data. The proto argument declares the
// type of models this bucket is managing.
func NewBucket(name string, proto Model) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}

	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of this bucket.
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including prefix
// We copy into a new array rather than use append, as we don't
// want consequetive calls to overwrite the same byte array.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// One query the database for a single model instance. Lookup is done by the
// primary key. Result is loaded into given destination model.
// This method returns ErrNotFound if the entity does not exist in the
// database. If given model type cannot be used to contain stored entity,
// ErrType is returned.
func (b Bucket) One(db chill.ReadOnlyKVStore, key []byte, dest Model) error {
	if reflect.TypeOf(dest) != reflect.TypeOf(b.proto) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", b.proto, dest)
	}
	raw, err := db.Get(b.DBKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot read")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	if err := Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(err, "%s bucket", b.name)
	}
	return nil
}

// Has returns true if an entity with given key exists.
func (b Bucket) Has(db chill.ReadOnlyKVStore, key []byte) (bool, error) {
	ok, err := db.Has(b.DBKey(key))
	if err != nil {
		return false, errors.Wrap(err, "cannot read")
	}
	return ok, nil
}

// Put saves given model in the database. Model is validated before being
// written.
func (b Bucket) Put(db chill.KVStore, key []byte, m Model) error {
	if reflect.TypeOf(m) != reflect.TypeOf(b.proto) {
		return errors.Wrapf(errors.ErrType, "cannot store %T in %s bucket", m, b.name)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := Marshal(m)
	if err != nil {
		return errors.Wrapf(err, "%s bucket", b.name)
	}
	if err := db.Set(b.DBKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot write")
	}
	return nil
}

// Delete removes an entity with given primary key from the database. It
// returns ErrNotFound if an entity with given key does not exist.
func (b Bucket) Delete(db chill.KVStore, key []byte) error {
	dbkey := b.DBKey(key)
	ok, err := db.Has(dbkey)
	if err != nil {
		return errors.Wrap(err, "cannot read")
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s bucket", b.name)
	}
	return db.Delete(dbkey)
}

// Marshal serializes given model using the protobuf codec.
func Marshal(m Model) ([]byte, error) {
	raw, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", m, err)
	}
	// A zero value model serializes to no bytes at all. A nil value
	// would be indistinguishable from a missing key.
	if raw == nil {
		raw = []byte{}
	}
	return raw, nil
}

// Unmarshal loads given protobuf serialized data into destination model.
func Unmarshal(raw []byte, dest Model) error {
	if err := proto.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal %T: %s", dest, err)
	}
	return nil
}
