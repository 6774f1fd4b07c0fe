/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of model.
* Models are serialized with the protobuf codec.
* Sequences provide monotonic keys for newly created entities.
*/
package orm
