package packet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

type WriteFn[T any] func(io.Writer, T) error
type ReadFn[T any] func(*FrameReader) (T, error)

// DefaultStringMax is the maximum length of a String field unless the
// field declares its own.
const DefaultStringMax = 32767

func WriteBoolean(w io.Writer, v bool) (err error) {
	b := byte(0)
	if v {
		b = 1
	}

	_, err = w.Write([]byte{b})
	return
}

func ReadBoolean(r *FrameReader) (v bool, err error) {
	b, err := r.ReadByte()
	if err != nil {
		return
	}

	if b == 0 {
		v = false
	} else if b == 1 {
		v = true
	} else {
		err = errors.New("invalid byte for Boolean field")
	}

	return
}

func WriteByte(w io.Writer, v byte) (err error) {
	_, err = w.Write([]byte{v})
	return
}

func ReadByte(r *FrameReader) (v byte, err error) {
	b, err := r.ReadByte()
	return b, err
}

func WriteSignedByte(w io.Writer, v int8) error {
	return WriteByte(w, byte(v))
}

func ReadSignedByte(r *FrameReader) (v int8, err error) {
	b, err := r.ReadByte()
	return int8(b), err
}

func WriteShort(w io.Writer, v int16) (err error) {
	return WriteUnsignedShort(w, uint16(v))
}

func ReadShort(r *FrameReader) (v int16, err error) {
	u, err := ReadUnsignedShort(r)
	return int16(u), err
}

func WriteUnsignedShort(w io.Writer, v uint16) (err error) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err = w.Write(b[:])
	return
}

func ReadUnsignedShort(r *FrameReader) (v uint16, err error) {
	b, err := r.Read(2)
	if err != nil {
		return
	}

	v = binary.BigEndian.Uint16(b)
	return
}

func WriteInt(w io.Writer, v int32) (err error) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	_, err = w.Write(b[:])
	return
}

func ReadInt(r *FrameReader) (v int32, err error) {
	b, err := r.Read(4)
	if err != nil {
		return
	}

	v = int32(binary.BigEndian.Uint32(b))
	return
}

func WriteLong(w io.Writer, v int64) (err error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	_, err = w.Write(b[:])
	return
}

func ReadLong(r *FrameReader) (v int64, err error) {
	b, err := r.Read(8)
	if err != nil {
		return
	}

	v = int64(binary.BigEndian.Uint64(b))
	return
}

func WriteFloat(w io.Writer, v float32) error {
	return WriteInt(w, int32(math.Float32bits(v)))
}

func ReadFloat(r *FrameReader) (v float32, err error) {
	bits, err := ReadInt(r)
	return math.Float32frombits(uint32(bits)), err
}

func WriteDouble(w io.Writer, v float64) error {
	return WriteLong(w, int64(math.Float64bits(v)))
}

func ReadDouble(r *FrameReader) (v float64, err error) {
	bits, err := ReadLong(r)
	return math.Float64frombits(uint64(bits)), err
}

// Angle is a rotation in steps of 1/256 of a full turn.
type Angle uint8

func AngleFromDegrees(deg float32) Angle {
	return Angle(int32(deg*256/360) & 0xFF)
}

func (a Angle) Degrees() float32 {
	return float32(a) * 360 / 256
}

func WriteAngle(w io.Writer, v Angle) error {
	return WriteByte(w, byte(v))
}

func ReadAngle(r *FrameReader) (v Angle, err error) {
	b, err := r.ReadByte()
	return Angle(b), err
}

var (
	ErrVarIntTooLong  = errors.New("VarInt is too long")
	ErrVarLongTooLong = errors.New("VarLong is too long")
)

func WriteVarInt(w io.Writer, v int32) error {
	var buf [5]byte
	n := putUvarint(buf[:], uint64(uint32(v)))
	_, err := w.Write(buf[:n])
	return err
}

func ReadVarInt(r *FrameReader) (int32, error) {
	return readVarInt(r)
}

// ReadVarIntFromReader reads a VarInt from a stream.
func ReadVarIntFromReader(r io.Reader) (int32, error) {
	if br, ok := r.(io.ByteReader); ok {
		return readVarInt(br)
	}
	return readVarInt(singleByteReader{r})
}

func readVarInt(r io.ByteReader) (int32, error) {
	var v int32
	var shift uint

	for n := 0; n < 5; n++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && n > 0 {
				err = io.ErrUnexpectedEOF
			}
			return v, err
		}

		segment := b & 0x7F
		v |= int32(segment) << shift

		shift += 7

		if (b & 0x80) == 0 {
			return v, nil
		}
	}
	return v, ErrVarIntTooLong
}

type singleByteReader struct {
	io.Reader
}

func (s singleByteReader) ReadByte() (byte, error) {
	var b [1]byte
	_, err := io.ReadFull(s.Reader, b[:])
	return b[0], err
}

func WriteVarLong(w io.Writer, v int64) error {
	var buf [10]byte
	n := putUvarint(buf[:], uint64(v))
	_, err := w.Write(buf[:n])
	return err
}

func ReadVarLong(r *FrameReader) (int64, error) {
	var v int64
	var shift uint

	for n := 0; n < 10; n++ {
		b, err := r.ReadByte()
		if err != nil {
			return v, err
		}

		v |= int64(b&0x7F) << shift
		shift += 7

		if (b & 0x80) == 0 {
			return v, nil
		}
	}
	return v, ErrVarLongTooLong
}

func putUvarint(buf []byte, uv uint64) int {
	i := 0
	for {
		b := byte(uv & 0x7F)
		uv >>= 7
		if uv != 0 {
			b |= 0x80
		}
		buf[i] = b
		i++
		if uv == 0 {
			return i
		}
	}
}

// VarIntSize reports the encoded length of v.
func VarIntSize(v int32) int {
	var buf [5]byte
	return putUvarint(buf[:], uint64(uint32(v)))
}

var ErrNegativeLength = errors.New("negative length")

func WriteString(w io.Writer, v string) (err error) {
	return WriteBoundedString(w, v, DefaultStringMax)
}

func ReadString(r *FrameReader) (v string, err error) {
	return ReadBoundedString(r, DefaultStringMax)
}

// WriteBoundedString writes a String whose length may not exceed max
// UTF-16 code units.
func WriteBoundedString(w io.Writer, v string, max int) (err error) {
	if utf16Len(v) > max {
		return ErrStringTooLong
	}
	err = WriteVarInt(w, int32(len(v)))
	if err != nil {
		return
	}
	_, err = io.WriteString(w, v)
	return
}

func ReadBoundedString(r *FrameReader, max int) (v string, err error) {
	length := int32(0)
	length, err = ReadVarInt(r)
	if err != nil {
		return
	}

	if length < 0 {
		err = ErrNegativeLength
		return
	}
	if int(length) > max*3 {
		err = ErrStringTooLong
		return
	}

	buf, err := r.Read(int(length))
	if err != nil {
		return
	}
	v = string(buf)
	if utf16Len(v) > max {
		err = ErrStringTooLong
	}
	return
}

func utf16Len(s string) int {
	n := 0
	for _, c := range s {
		if c >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// Identifier is a namespaced location such as "minecraft:stone".
type Identifier string

// NewIdentifier qualifies path with the default namespace unless it
// already names one.
func NewIdentifier(path string) Identifier {
	if strings.Contains(path, ":") {
		return Identifier(path)
	}
	return Identifier("minecraft:" + path)
}

func (id Identifier) Namespace() string {
	ns, _, found := strings.Cut(string(id), ":")
	if !found {
		return "minecraft"
	}
	return ns
}

func (id Identifier) Path() string {
	_, p, found := strings.Cut(string(id), ":")
	if !found {
		return string(id)
	}
	return p
}

func WriteIdentifier(w io.Writer, v Identifier) error {
	return WriteString(w, string(v))
}

func ReadIdentifier(r *FrameReader) (Identifier, error) {
	s, err := ReadString(r)
	if err == nil && !utf8.ValidString(s) {
		err = errors.New("invalid UTF-8 in Identifier")
	}
	return Identifier(s), err
}

func WriteByteArray(w io.Writer, v []byte) (err error) {
	if err = WriteVarInt(w, int32(len(v))); err != nil {
		return
	}
	_, err = w.Write(v)
	return
}

func ReadByteArray(r *FrameReader) (v []byte, err error) {
	length, err := ReadVarInt(r)
	if err != nil {
		return
	}
	if length < 0 {
		return nil, ErrNegativeLength
	}
	b, err := r.Read(int(length))
	if err != nil {
		return
	}
	v = append([]byte{}, b...)
	return
}

// WriteRestBytes writes v without a length; it must be the last field.
func WriteRestBytes(w io.Writer, v []byte) (err error) {
	_, err = w.Write(v)
	return
}

func ReadRestBytes(r *FrameReader) (v []byte, err error) {
	return append([]byte{}, r.Rest()...), nil
}

// Position's serialized form is composed of X, Z which are 26 bits each, and 12 bits of Y.
// Each component is sign-extended on read, so out of range values do not
// survive a round trip.
type Position struct {
	X int32
	Y int16
	Z int32
}

func WritePosition(w io.Writer, v Position) (err error) {
	return WriteLong(w, int64(v.Pack()))
}

func ReadPosition(r *FrameReader) (v Position, err error) {
	packed, err := ReadLong(r)
	if err != nil {
		return
	}

	v = UnpackPosition(uint64(packed))
	return
}

func WriteUUID(w io.Writer, v uuid.UUID) (err error) {
	_, err = w.Write(v[:])
	return
}

func ReadUUID(r *FrameReader) (v uuid.UUID, err error) {
	b, err := r.Read(16)
	if err != nil {
		return
	}

	v = uuid.UUID(b)
	return
}

func WritePrefixedArray[T any](w io.Writer, v []T, write WriteFn[T]) (err error) {
	err = WriteVarInt(w, int32(len(v)))
	if err != nil {
		return
	}

	for _, item := range v {
		err = write(w, item)
		if err != nil {
			return
		}
	}
	return
}

func ReadPrefixedArray[T any](r *FrameReader, read ReadFn[T]) (v []T, err error) {
	length := int32(0)
	if length, err = ReadVarInt(r); err != nil {
		return
	}
	if length < 0 {
		return nil, ErrNegativeLength
	}
	// every element occupies at least one byte
	if int(length) > r.Remaining() {
		return nil, io.ErrUnexpectedEOF
	}

	v = make([]T, length)
	for i := 0; i < int(length); i++ {
		var item T
		if item, err = read(r); err != nil {
			return
		}
		v[i] = item
	}

	return
}

// WriteFixedArray writes the n items of v with no count prefix.
func WriteFixedArray[T any](w io.Writer, v []T, write WriteFn[T], n int) (err error) {
	if len(v) != n {
		return fmt.Errorf("fixed array holds %d items, want %d", len(v), n)
	}
	for _, item := range v {
		if err = write(w, item); err != nil {
			return
		}
	}
	return
}

func ReadFixedArray[T any](r *FrameReader, read ReadFn[T], n int) (v []T, err error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	// as in ReadPrefixedArray, elements are at least one byte long
	if n > r.Remaining() {
		return nil, io.ErrUnexpectedEOF
	}
	v = make([]T, n)
	for i := range v {
		if v[i], err = read(r); err != nil {
			return
		}
	}
	return
}

// Optional[T] represents Optional field in a packet
//
// Serialized Optional[T] is prefixed with Boolean of whether the value exists.
// If so, the value T is followed.
type Optional[T any] struct {
	Exists bool
	Item   T
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Exists: true, Item: v}
}

func WriteOptional[T any](w io.Writer, v Optional[T], write WriteFn[T]) (err error) {
	err = WriteBoolean(w, v.Exists)
	if err != nil {
		return
	}

	if v.Exists {
		err = write(w, v.Item)
	}
	return
}

func ReadOptional[T any](r *FrameReader, read ReadFn[T]) (v Optional[T], err error) {
	if v.Exists, err = ReadBoolean(r); err != nil {
		return
	}

	if v.Exists {
		v.Item, err = read(r)
	}
	return
}

// WriteOptionalUnsignedInt writes a VarInt of value+1, or 0 when absent.
// Unlike Optional there is no presence flag.
func WriteOptionalUnsignedInt(w io.Writer, v Optional[int32]) error {
	if !v.Exists {
		return WriteVarInt(w, 0)
	}
	return WriteVarInt(w, v.Item+1)
}

func ReadOptionalUnsignedInt(r *FrameReader) (v Optional[int32], err error) {
	n, err := ReadVarInt(r)
	if err != nil || n == 0 {
		return
	}
	return Some(n - 1), nil
}

// BitSet is a VarInt-counted array of longs, bit i living in word i/64.
type BitSet []int64

func (b BitSet) Get(i int) bool {
	if i < 0 || i/64 >= len(b) {
		return false
	}
	return b[i/64]&(1<<(i%64)) != 0
}

// Set returns b with bit i set, growing it as needed.
func (b BitSet) Set(i int) BitSet {
	for i/64 >= len(b) {
		b = append(b, 0)
	}
	b[i/64] |= 1 << (i % 64)
	return b
}

func WriteBitSet(w io.Writer, v BitSet) error {
	return WritePrefixedArray(w, v, WriteLong)
}

func ReadBitSet(r *FrameReader) (BitSet, error) {
	return ReadPrefixedArray(r, ReadLong)
}
