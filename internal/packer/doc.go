// Package packer runs the asset packing pipeline:
//
//	Discovering -> Encoding -> Emitting -> Done
//
// Discovery failing on a missing asset root is fatal. Finding no files ends
// the run early without touching the output. Every other failure aborts the
// whole run before anything is written; there is no partial output.
//
// Progress is reported as plain text lines on the configured writer, in the
// format the firmware build scripts expect to see. Diagnostics go to the
// zerolog logger.
package packer
