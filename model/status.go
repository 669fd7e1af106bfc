package model

//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names

// Status represents the computed validation state of one name ENUM(
// secure // intact chain of trust from an anchor down to the name
// insecure // no covering trust anchor, chain is unauthenticated
// bogus // key material in the chain does not match
// indeterminate // missing data prevented a decision
// )
type Status int
