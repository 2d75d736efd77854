// Package actor models the caller on whose behalf an operation runs.
//
// Roles form a closed set (Client, Vendor, Admin). Every switch over Role in
// the domain is exhaustive; the zero value UnknownRole never authorizes
// anything.
package actor
