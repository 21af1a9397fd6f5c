package sanitize

import "errors"

// errNilSanitizer reports misuse: a call against a nil Sanitizer.
var errNilSanitizer = errors.New("sanitize: nil sanitizer")

const (
	msgDuplicateAttribute  = "duplicate attribute on element"
	msgUnmatchedEndTag     = "end tag does not match any open element"
	msgMismatchedEndTag    = "end tag name does not match innermost open element"
	msgMultipleRoots       = "document has more than one root element"
	msgTextOutsideRoot     = "non-whitespace character data outside the root element"
	msgUnclosedAtEOF       = "input ended with open elements"
	msgNoRootElement       = "document has no root element"
	msgMaxDepthExceeded    = "element nesting exceeds configured maximum depth"
	msgAttributeWithoutTag = "attribute event outside a start tag"
)
