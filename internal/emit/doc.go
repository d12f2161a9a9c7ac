// Package emit assembles the rendered declaration blocks into the generated
// header and writes it out.
//
// The header is wrapped in the WWW_H include guard and pulls in
// <pgmspace.h> for PROGMEM. The file is always rewritten in full.
package emit
