// Package user holds the marketplace accounts. Credentials live in the
// identity service; this service keeps the profile, the role and, for vendor
// staff, the link to the vendor the account acts for.
package user
