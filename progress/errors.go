package progress

import "errors"

// Domain errors surfaced to route handlers. Controllers map the first to 404
// on template lookups and the other two to 404 on the strict toggle path.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrSectionNotFound  = errors.New("section not found for user")
	ErrCardNotInSection = errors.New("card not linked to this section")
)
