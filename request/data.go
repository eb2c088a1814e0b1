package request

import (
	"github.com/arloliu/go-uds/internal/hexenc"
	"github.com/arloliu/go-uds/uds"
)

// Data transmission services.

// ReadDataByIdentifier encodes a request for one or more data record values.
// Each 2-byte data identifier is encoded high byte then low byte, in input
// order.
func (b *Builder) ReadDataByIdentifier(dataIdentifiers ...int) string {
	tokens := make([]string, 0, len(dataIdentifiers)+1)
	tokens = append(tokens, sidTok(uds.RDBI))
	for _, did := range dataIdentifiers {
		tokens = append(tokens, b.wordTok(uds.RDBI, "dataIdentifier", did))
	}
	return join(tokens...)
}

// ReadMemoryByAddress encodes a request for memory data at a starting
// address. The low nibble of formatIdentifier gives the byte width of
// memoryAddress and the high nibble the byte width of memorySize; both fields
// are rendered at exactly their declared width, zero padded, most significant
// byte first.
func (b *Builder) ReadMemoryByAddress(formatIdentifier, memoryAddress, memorySize int) string {
	addressWidth, sizeWidth := addressWidths(formatIdentifier)
	return join(
		sidTok(uds.RMBA),
		b.byteTok(uds.RMBA, "addressAndLengthFormatIdentifier", formatIdentifier),
		hexenc.Fixed(memoryAddress, addressWidth),
		hexenc.Fixed(memorySize, sizeWidth),
	)
}

// ReadScalingDataByIdentifier encodes a request for the scaling data record
// of a 2-byte data identifier.
func (b *Builder) ReadScalingDataByIdentifier(dataIdentifier int) string {
	return join(sidTok(uds.RSDBI), b.wordTok(uds.RSDBI, "dataIdentifier", dataIdentifier))
}

// ReadDataByPeriodicIdentifier encodes a request for periodic transmission of
// data records. transmissionMode selects the rate; each periodic data
// identifier is the low byte of its full 0xF2xx identifier.
func (b *Builder) ReadDataByPeriodicIdentifier(transmissionMode int, periodicDataIdentifiers ...int) string {
	return join(
		sidTok(uds.RDBPI),
		b.byteTok(uds.RDBPI, "transmissionMode", transmissionMode),
		hexenc.List(periodicDataIdentifiers),
	)
}

// WriteDataByIdentifier encodes a request to write a data record at the
// location named by the data identifier.
func (b *Builder) WriteDataByIdentifier(dataIdentifier int, dataRecord []int) string {
	return join(sidTok(uds.WDBI), hexenc.Minimal(dataIdentifier), hexenc.List(dataRecord))
}

// WriteMemoryByAddress encodes a request to write dataRecord into server
// memory. Address and size widths are taken from the formatIdentifier
// nibbles, exactly as in ReadMemoryByAddress.
func (b *Builder) WriteMemoryByAddress(formatIdentifier, memoryAddress, memorySize int, dataRecord []int) string {
	addressWidth, sizeWidth := addressWidths(formatIdentifier)
	return join(
		sidTok(uds.WMBA),
		b.byteTok(uds.WMBA, "addressAndLengthFormatIdentifier", formatIdentifier),
		hexenc.Fixed(memoryAddress, addressWidth),
		hexenc.Fixed(memorySize, sizeWidth),
		hexenc.List(dataRecord),
	)
}
