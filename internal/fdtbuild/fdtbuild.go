// Package fdtbuild constructs synthetic FDT/DTB blobs for this
// repository's own tests. It is adapted from the FDT builder in
// tinyrange-cc's internal/fdt package (build.go, builder.go), which
// serializes a device tree for booting a hypervisor guest; here the
// same serialization logic manufactures fixtures for the read-only
// parser in the parent package. It is not part of the public API —
// spec.md's Non-goals exclude write/mutate operations on device trees.
package fdtbuild

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
)

const (
	headerSize  = 0x28
	version     = 17
	lastCompVer = 16
	magic       = 0xd00dfeed

	tagBeginNode = 0x1
	tagEndNode   = 0x2
	tagProp      = 0x3
	tagEnd       = 0x9
)

// Prop describes a single property in a JSON-friendly form. Exactly
// one of the typed fields should be populated.
type Prop struct {
	Strings []string
	U32     []uint32
	U64     []uint64
	Bytes   []byte
	Flag    bool
}

// Kind returns the name of the populated field, or "" if none are set.
func (p Prop) Kind() string {
	switch {
	case len(p.Strings) > 0:
		return "strings"
	case len(p.U32) > 0:
		return "u32"
	case len(p.U64) > 0:
		return "u64"
	case len(p.Bytes) > 0:
		return "bytes"
	case p.Flag:
		return "flag"
	default:
		return ""
	}
}

func (p Prop) definedCount() int {
	n := 0
	if len(p.Strings) > 0 {
		n++
	}
	if len(p.U32) > 0 {
		n++
	}
	if len(p.U64) > 0 {
		n++
	}
	if len(p.Bytes) > 0 {
		n++
	}
	if p.Flag {
		n++
	}
	return n
}

// Tree describes a device-tree node to serialize.
type Tree struct {
	Name       string
	Properties map[string]Prop
	Children   []Tree
}

// Reservation is one memory-reservation entry.
type Reservation struct {
	Address uint64
	Size    uint64
}

// Blob serializes root into a complete FDT blob with the given
// reservation entries (a terminating (0,0) sentinel is appended
// automatically) and the given boot_cpuid_phys.
func Blob(root Tree, rsvmap []Reservation, bootCPUID uint32) ([]byte, error) {
	b := &builder{stringsOff: make(map[string]uint32)}
	if err := b.emitTree(root); err != nil {
		return nil, err
	}
	return b.finish(rsvmap, bootCPUID), nil
}

type builder struct {
	structBuf  bytes.Buffer
	strings    bytes.Buffer
	stringsOff map[string]uint32
}

func (b *builder) emitTree(n Tree) error {
	b.beginNode(n.Name)

	if len(n.Properties) > 0 {
		names := make([]string, 0, len(n.Properties))
		for name := range n.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := b.emitProp(name, n.Properties[name]); err != nil {
				return err
			}
		}
	}

	for _, child := range n.Children {
		if err := b.emitTree(child); err != nil {
			return err
		}
	}

	b.endNode()
	return nil
}

func (b *builder) emitProp(name string, prop Prop) error {
	if prop.definedCount() == 0 {
		return fmt.Errorf("fdtbuild: property %q has no values", name)
	}
	if prop.definedCount() > 1 {
		return fmt.Errorf("fdtbuild: property %q has multiple value kinds", name)
	}
	var data []byte
	switch prop.Kind() {
	case "strings":
		var buf bytes.Buffer
		for _, v := range prop.Strings {
			buf.WriteString(v)
			buf.WriteByte(0)
		}
		data = buf.Bytes()
	case "u32":
		data = make([]byte, 0, len(prop.U32)*4)
		for _, v := range prop.U32 {
			var tmp [4]byte
			binary.BigEndian.PutUint32(tmp[:], v)
			data = append(data, tmp[:]...)
		}
	case "u64":
		data = make([]byte, 0, len(prop.U64)*8)
		for _, v := range prop.U64 {
			var tmp [8]byte
			binary.BigEndian.PutUint64(tmp[:], v)
			data = append(data, tmp[:]...)
		}
	case "bytes":
		data = append(data, prop.Bytes...)
	case "flag":
		data = nil
	default:
		return fmt.Errorf("fdtbuild: property %q has unsupported kind %q", name, prop.Kind())
	}
	b.prop(name, data)
	return nil
}

func (b *builder) beginNode(name string) {
	b.writeTag(tagBeginNode)
	b.structBuf.WriteString(name)
	b.structBuf.WriteByte(0)
	b.pad()
}

func (b *builder) endNode() {
	b.writeTag(tagEndNode)
}

func (b *builder) prop(name string, value []byte) {
	b.writeTag(tagProp)
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(len(value)))
	b.structBuf.Write(tmp[:])
	binary.BigEndian.PutUint32(tmp[:], b.stringOffset(name))
	b.structBuf.Write(tmp[:])
	b.structBuf.Write(value)
	b.pad()
}

func (b *builder) finish(rsvmap []Reservation, bootCPUID uint32) []byte {
	b.writeTag(tagEnd)
	b.pad()

	structBytes := b.structBuf.Bytes()
	stringsBytes := b.strings.Bytes()

	memReserve := make([]byte, 16*(len(rsvmap)+1))
	for i, e := range rsvmap {
		binary.BigEndian.PutUint64(memReserve[i*16:], e.Address)
		binary.BigEndian.PutUint64(memReserve[i*16+8:], e.Size)
	}
	// Trailing 16 bytes are already the zero sentinel.

	offMemReserve := headerSize // headerSize is the full v17, 40-byte header.
	offStruct := offMemReserve + len(memReserve)
	offStrings := offStruct + len(structBytes)
	totalSize := offStrings + len(stringsBytes)

	out := make([]byte, totalSize)
	binary.BigEndian.PutUint32(out[0:4], magic)
	binary.BigEndian.PutUint32(out[4:8], uint32(totalSize))
	binary.BigEndian.PutUint32(out[8:12], uint32(offStruct))
	binary.BigEndian.PutUint32(out[12:16], uint32(offStrings))
	binary.BigEndian.PutUint32(out[16:20], uint32(offMemReserve))
	binary.BigEndian.PutUint32(out[20:24], version)
	binary.BigEndian.PutUint32(out[24:28], lastCompVer)
	binary.BigEndian.PutUint32(out[28:32], bootCPUID)
	binary.BigEndian.PutUint32(out[32:36], uint32(len(stringsBytes)))
	binary.BigEndian.PutUint32(out[36:40], uint32(len(structBytes)))

	copy(out[offMemReserve:], memReserve)
	copy(out[offStruct:], structBytes)
	copy(out[offStrings:], stringsBytes)

	return out
}

func (b *builder) stringOffset(name string) uint32 {
	if off, ok := b.stringsOff[name]; ok {
		return off
	}
	off := uint32(b.strings.Len())
	b.strings.WriteString(name)
	b.strings.WriteByte(0)
	b.stringsOff[name] = off
	return off
}

func (b *builder) writeTag(tag uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], tag)
	b.structBuf.Write(tmp[:])
}

func (b *builder) pad() {
	for b.structBuf.Len()%4 != 0 {
		b.structBuf.WriteByte(0)
	}
}
