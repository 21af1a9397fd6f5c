// Package sanitize is the second stage of the parsing pipeline. It
// consumes package rawxml's events and enforces the well-formedness rules
// the raw parser itself does not check: exactly one root element, matched
// start and end tags, no duplicate attribute names on one element, and no
// non-whitespace character data outside the root.
//
// Sanitizer mirrors Parser's push/drain shape: Push feeds one rawxml.Event
// at a time, NextEvent drains whatever events that push produced.
package sanitize
