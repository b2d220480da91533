package geom

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
)

const wkbSridFlag = 0x20000000

var ErrShortWkb = errors.New("wkb too short")
var ErrWkbByteOrder = errors.New("invalid wkb byte order")
var ErrWkbHasSrid = errors.New("wkb already contains srid")

// EWKBHex converts 2d WKB into hex encoded EWKB with srid, as expected by
// PostGIS geometry columns with a type modifier. The byte order of wkb is
// kept.
func EWKBHex(wkb []byte, srid int) ([]byte, error) {
	if len(wkb) < 5 {
		return nil, ErrShortWkb
	}
	var order binary.ByteOrder
	switch wkb[0] {
	case 0:
		order = binary.BigEndian
	case 1:
		order = binary.LittleEndian
	default:
		return nil, ErrWkbByteOrder
	}
	geomType := order.Uint32(wkb[1:5])
	if geomType&wkbSridFlag != 0 {
		return nil, ErrWkbHasSrid
	}

	buf := &bytes.Buffer{}
	buf.WriteByte(wkb[0])
	if srid != 0 {
		binary.Write(buf, order, geomType|wkbSridFlag)
		binary.Write(buf, order, uint32(srid))
	} else {
		binary.Write(buf, order, geomType)
	}
	buf.Write(wkb[5:])

	src := buf.Bytes()
	dst := make([]byte, hex.EncodedLen(len(src)))
	hex.Encode(dst, src)
	return bytes.ToUpper(dst), nil
}
