package packer

//go:generate go tool stringer -type=Stage -trimprefix=Stage -output=stage_string.go

// Stage is the pipeline position of a Packer.
type Stage int

const (
	StageDiscovering Stage = iota
	StageEncoding
	StageEmitting
	StageDone
)
