package htmltok

// Version is the current release of this module, following the
// lestrrat-go convention of exposing a plain version string for tools
// like cmd/htmltok-dump to report.
const Version = "0.1.0"
