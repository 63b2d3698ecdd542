// Package control provides the minimal control context handed to value
// processors.
//
// The full control tree (devices, templates, state buffers) lives outside
// Gray Logic Input. Processors only need to know which control they are
// running for and the value type it produces, so that is all Control carries.
package control
