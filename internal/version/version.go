package version

// Version is the gitroot release reported in run headers.
const Version = "0.3.0"
