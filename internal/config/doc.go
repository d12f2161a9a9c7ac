// Package config holds the packer configuration: where assets live, where
// the generated header goes, which extensions are packed and how file
// extensions map to MIME types.
//
// A [Config] is built once at process start from [Default], optionally
// overlaid with a YAML file via [LoadFile], and passed explicitly to every
// stage of the run.
package config
