package registry

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/haleta-e/lost-and-found-manager/pkg/item"
)

// Data file layout, all integers little-endian:
//
//	header: nextID int32, recordCount int32
//	per record, in store order:
//	  id int32
//	  name, category, description: u64 length + raw bytes
//	  date: fixed 12 bytes (10 content + 2 zero padding)
//	  location, status: u64 length + raw bytes
//	  matched, claimed: int32 0/1
//	  matchedItemID: int32, -1 for none
//	  personName, personContact: u64 length + raw bytes
//
// Strings carry no terminator and no escaping. There is no checksum and no
// version tag; the whole file is rewritten on every change.
const (
	headerLen    = 8
	dateFieldLen = 12
)

func encodeStore(nextID int32, items []item.Item) []byte {
	var buf bytes.Buffer
	putInt32(&buf, nextID)
	putInt32(&buf, int32(len(items)))
	for i := range items {
		encodeItem(&buf, &items[i])
	}
	return buf.Bytes()
}

func encodeItem(buf *bytes.Buffer, it *item.Item) {
	putInt32(buf, it.ID)
	putString(buf, it.Name)
	putString(buf, string(it.Category))
	putString(buf, it.Description)
	putDate(buf, it.Date)
	putString(buf, it.Location)
	putString(buf, string(it.Status))
	putBool(buf, it.Matched)
	putBool(buf, it.Claimed)
	putInt32(buf, it.MatchedItemID)
	putString(buf, it.PersonName)
	putString(buf, it.PersonContact)
}

func putInt32(buf *bytes.Buffer, v int32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
}

func putBool(buf *bytes.Buffer, v bool) {
	if v {
		putInt32(buf, 1)
		return
	}
	putInt32(buf, 0)
}

func putString(buf *bytes.Buffer, s string) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(len(s)))
	buf.Write(b[:])
	buf.WriteString(s)
}

func putDate(buf *bytes.Buffer, d item.Date) {
	var b [dateFieldLen]byte
	copy(b[:], d.String())
	buf.Write(b[:])
}

// decodeStore parses a full data file. A buffer too short for the header
// returns errShortHeader; any malformed record body returns an error wrapping
// ErrCorrupt. Every length prefix is checked against the remaining buffer
// before it is trusted.
func decodeStore(data []byte) (int32, []item.Item, error) {
	if len(data) < headerLen {
		return 0, nil, errShortHeader
	}

	nextID := int32(binary.LittleEndian.Uint32(data[0:4]))
	count := int32(binary.LittleEndian.Uint32(data[4:8]))
	if count < 0 {
		return 0, nil, fmt.Errorf("%w: negative record count %d", ErrCorrupt, count)
	}

	d := &decoder{data: data, off: headerLen}

	items := make([]item.Item, 0, capacityFor(0, int(count)))
	for i := int32(0); i < count; i++ {
		it, err := decodeItem(d)
		if err != nil {
			return 0, nil, fmt.Errorf("record %d: %w", i, err)
		}
		items = append(items, it)
	}
	return nextID, items, nil
}

func decodeItem(d *decoder) (item.Item, error) {
	var it item.Item
	var err error

	if it.ID, err = d.int32(); err != nil {
		return it, err
	}
	if it.Name, err = d.str(); err != nil {
		return it, err
	}
	category, err := d.str()
	if err != nil {
		return it, err
	}
	it.Category = item.Category(category)
	if it.Description, err = d.str(); err != nil {
		return it, err
	}
	if it.Date, err = d.date(); err != nil {
		return it, err
	}
	if it.Location, err = d.str(); err != nil {
		return it, err
	}
	status, err := d.str()
	if err != nil {
		return it, err
	}
	it.Status = item.Status(status)
	if it.Matched, err = d.bool(); err != nil {
		return it, err
	}
	if it.Claimed, err = d.bool(); err != nil {
		return it, err
	}
	if it.MatchedItemID, err = d.int32(); err != nil {
		return it, err
	}
	if it.PersonName, err = d.str(); err != nil {
		return it, err
	}
	if it.PersonContact, err = d.str(); err != nil {
		return it, err
	}
	return it, nil
}

// decoder is a bounds-checked cursor over the raw file bytes.
type decoder struct {
	data []byte
	off  int
}

func (d *decoder) remaining() int { return len(d.data) - d.off }

func (d *decoder) int32() (int32, error) {
	if d.remaining() < 4 {
		return 0, fmt.Errorf("%w: truncated integer at offset %d", ErrCorrupt, d.off)
	}
	v := int32(binary.LittleEndian.Uint32(d.data[d.off:]))
	d.off += 4
	return v, nil
}

func (d *decoder) bool() (bool, error) {
	v, err := d.int32()
	return v != 0, err
}

func (d *decoder) str() (string, error) {
	if d.remaining() < 8 {
		return "", fmt.Errorf("%w: truncated length prefix at offset %d", ErrCorrupt, d.off)
	}
	n := binary.LittleEndian.Uint64(d.data[d.off:])
	d.off += 8
	if n > uint64(d.remaining()) {
		return "", fmt.Errorf("%w: length %d exceeds %d remaining bytes at offset %d", ErrCorrupt, n, d.remaining(), d.off)
	}
	s := string(d.data[d.off : d.off+int(n)])
	d.off += int(n)
	return s, nil
}

func (d *decoder) date() (item.Date, error) {
	if d.remaining() < dateFieldLen {
		return item.Date{}, fmt.Errorf("%w: truncated date field at offset %d", ErrCorrupt, d.off)
	}
	raw := string(d.data[d.off : d.off+item.DateLen])
	d.off += dateFieldLen

	parsed, err := item.ParseDate(raw)
	if err != nil {
		return item.Date{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return parsed, nil
}
