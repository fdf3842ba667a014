package streams

// Version is the semantic version of the streams library.
const Version = "v0.3.0"
