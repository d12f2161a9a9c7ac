// Package encode turns one asset file into its C declaration block.
//
// Each file is gzip-compressed at the highest level, given an identifier
// derived from its path relative to the asset root, classified by MIME type
// and rendered as three declarations:
//
//	const uint8_t <id>_gz[] PROGMEM = { ... };
//	const unsigned int <id>_gz_len = <N>;
//	const char * <id>_gz_mime = "<mime>";
//
// The rendered text is consumed by the firmware compiler and must stay
// byte-for-byte stable. [ParseBlocks] reads it back.
package encode
