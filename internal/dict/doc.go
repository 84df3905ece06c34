// Package dict holds the named word lists consumed by the fake-data
// providers. The registry is write-once: built-in lists are fixed and
// user lists loaded from files may be added but never replaced.
package dict
