package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/Faultbox/gltfstream/internal/config"
	"github.com/Faultbox/gltfstream/internal/logger"
	"github.com/Faultbox/gltfstream/pkg/accessor"
	"github.com/Faultbox/gltfstream/pkg/gltf"
)

// open parses the file and configures external buffer resolution
// relative to its directory.
func open(path string) (*gltf.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	src, err := gltf.Parse(data, os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	logger.Log.Debug("parsed document",
		zap.String("file", path),
		zap.Int("buffers", len(src.Document().Buffers)),
		zap.Int("accessors", len(src.Document().Accessors)))
	return src, nil
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gltfinfo info <file>")
		os.Exit(1)
	}

	src, err := open(args[0])
	if err != nil {
		fatal(err)
	}
	doc := src.Document()

	heading := color.New(color.Bold)
	heading.Printf("File:      %s\n", args[0])
	fmt.Printf("Version:   %s\n", doc.Asset.Version)
	if doc.Asset.Generator != "" {
		fmt.Printf("Generator: %s\n", doc.Asset.Generator)
	}
	fmt.Printf("Buffers:   %d\n", len(doc.Buffers))
	fmt.Printf("Views:     %d\n", len(doc.BufferViews))
	fmt.Printf("Accessors: %d\n", len(doc.Accessors))

	var total int
	for _, b := range doc.Buffers {
		total += b.ByteLength
	}
	fmt.Printf("Data:      %.2f KB\n", float64(total)/1024)
}

func cmdAccessors(args []string, cfg *config.Config) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gltfinfo accessors <file>")
		os.Exit(1)
	}

	src, err := open(args[0])
	if err != nil {
		fatal(err)
	}

	index := color.New(color.FgCyan)
	sparseTag := color.New(color.FgYellow)
	if !cfg.Dump.Color {
		color.NoColor = true
	}

	for i, acc := range src.Document().Accessors {
		data, err := src.AccessorData(i)
		if err != nil {
			fmt.Printf("%s  unresolvable: %v\n", index.Sprintf("[%3d]", i), err)
			continue
		}

		line := fmt.Sprintf("%s  %-12s count=%-8d elem=%-3d stride=%-3d",
			index.Sprintf("[%3d]", i), data.Shape(), data.Count(),
			data.ElementSize(), data.Meta().Stride)
		if data.Normalized() {
			line += " normalized"
		}
		if data.IsSparse() {
			line += " " + sparseTag.Sprint("sparse")
		}
		if acc.Name != "" {
			line += "  " + acc.Name
		}
		fmt.Println(line)
	}
}

func cmdDump(args []string, cfg *config.Config) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: gltfinfo dump <file> <index>")
		os.Exit(1)
	}

	src, err := open(args[0])
	if err != nil {
		fatal(err)
	}
	idx, err := parseIndex(args[1])
	if err != nil {
		fatal(err)
	}

	data, err := src.AccessorData(idx)
	if err != nil {
		fatal(err)
	}
	if !cfg.Dump.Color {
		color.NoColor = true
	}

	fmt.Printf("Accessor %d: %s, %d elements\n", idx, data.Shape(), data.Count())
	if err := dumpShaped(data, cfg.Dump.MaxElements); err != nil {
		fatal(err)
	}
}

// dumpShaped picks the converter matching the accessor's declared
// component type and dimensionality, then prints every element.
func dumpShaped(d accessor.Data, maxN int) error {
	switch d.ComponentType() {
	case accessor.U8:
		return dumpComponents[uint8](d, maxN)
	case accessor.I8:
		return dumpComponents[int8](d, maxN)
	case accessor.U16:
		return dumpComponents[uint16](d, maxN)
	case accessor.I16:
		return dumpComponents[int16](d, maxN)
	case accessor.U32:
		return dumpComponents[uint32](d, maxN)
	default:
		return dumpComponents[float32](d, maxN)
	}
}

func dumpComponents[C accessor.Component](d accessor.Data, maxN int) error {
	switch d.Dimensions() {
	case accessor.DimScalar:
		return dumpConverted(d, accessor.Scalar[C](), maxN)
	case accessor.DimVec2:
		return dumpConverted(d, accessor.Vec2[C](), maxN)
	case accessor.DimVec3:
		return dumpConverted(d, accessor.Vec3[C](), maxN)
	case accessor.DimVec4:
		return dumpConverted(d, accessor.Vec4[C](), maxN)
	case accessor.DimMat2:
		return dumpConverted(d, accessor.Mat2[C](), maxN)
	case accessor.DimMat3:
		return dumpConverted(d, accessor.Mat3[C](), maxN)
	default:
		return dumpConverted(d, accessor.Mat4[C](), maxN)
	}
}

func dumpConverted[T any](d accessor.Data, conv accessor.Converter[T], maxN int) error {
	typed, err := accessor.As(d, conv)
	if err != nil {
		return err
	}

	dim := color.New(color.Faint)
	it := typed.Iter()
	count := 0
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		fmt.Printf("  %s %v\n", dim.Sprintf("[%d]", count), v)
		count++
		if maxN > 0 && count >= maxN && it.Len() > 0 {
			fmt.Printf("  ... %d more elements\n", it.Len())
			break
		}
	}
	return nil
}
