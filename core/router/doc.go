// Package router defines the explicit route table used by features.
//
// Features describe their endpoints as an ordered Table of (method, path,
// handler) entries instead of calling Fiber registration helpers directly.
// The table is validated before anything is registered, so a feature that
// declares the same endpoint twice fails at startup.
package router
