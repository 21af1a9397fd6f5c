// Package rawxml implements a low-resource, incremental recognizer for a
// simplified XML element grammar: element start/end tags, attributes,
// character data, comments, CDATA sections, and processing instructions.
//
// The Parser consumes arbitrary byte chunks through Feed and yields
// structural events through NextEvent without ever blocking on more input.
// It performs no well-formedness checking beyond the syntax of individual
// constructs; matching start/end tags, duplicate attributes, and document
// structure are the concern of package sanitize.
package rawxml
