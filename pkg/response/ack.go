package response

import "github.com/nyanzoo/necronomicon/pkg/header"

// Ack is the common interface every ack message type implements: its
// frame header and the Response it carries.
type Ack interface {
	Header() header.Header
	Response() Response
}
