/*

Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension owns a single configuration entity, stored under a key derived
from the extension name. Configuration is validated before it is written, so
a loaded configuration can always be trusted.

*/
package gconf
