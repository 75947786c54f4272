// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package kernel ships the Game of Life step as a WGSL compute shader and
// the host-side helpers that lay out its buffers.
//
// The shader reads a row-major array of u32 cells (binding 1), writes the
// next generation to a second array (binding 2) and takes the grid size
// from a 16-byte uniform (binding 0). It uses the same explicit modulo
// wrap as the CPU strategies, so one dispatch matches one life.Strategy
// Step. Dispatch itself is left to the host's WebGPU device.
package kernel

import (
	_ "embed"
	"encoding/binary"
	"fmt"

	"github.com/gogpu/naga"

	"github.com/gogpu/life"
)

// Source is the WGSL source of the step kernel.
//
//go:embed life.wgsl
var Source string

// EntryPoint is the compute entry point in Source.
const EntryPoint = "life_step"

// WorkgroupSize is the side of the square workgroup declared in Source.
const WorkgroupSize = 8

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic = 0x07230203

// Compile translates Source to a SPIR-V module, returned as the
// little-endian byte stream a WebGPU device accepts.
func Compile() ([]byte, error) {
	spirv, err := naga.Compile(Source)
	if err != nil {
		return nil, fmt.Errorf("kernel: compile: %w", err)
	}
	if len(spirv) < 4 || len(spirv)%4 != 0 {
		return nil, fmt.Errorf("kernel: SPIR-V length %d is not a positive multiple of 4", len(spirv))
	}
	if magic := binary.LittleEndian.Uint32(spirv); magic != SPIRVMagic {
		return nil, fmt.Errorf("kernel: SPIR-V magic %#08x, want %#08x", magic, SPIRVMagic)
	}
	return spirv, nil
}

// Workgroups returns the dispatch size covering a size×size grid.
func Workgroups(size int) (x, y uint32) {
	n := uint32((size + WorkgroupSize - 1) / WorkgroupSize)
	return n, n
}

// Params encodes the uniform buffer for a grid of the given size.
func Params(size int) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf, uint32(size))
	return buf
}

// Pack encodes the cells of g as little-endian u32 words, ready for the
// input storage buffer.
func Pack(g *life.Grid) []byte {
	n := g.Size()
	buf := make([]byte, 0, n*n*4)
	for r := range n {
		for _, c := range g.Row(r) {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(c))
		}
	}
	return buf
}
