package request

import (
	"github.com/arloliu/go-uds/internal/hexenc"
	"github.com/arloliu/go-uds/uds"
)

// IdentifierSource describes one source slice for a dynamic data identifier
// defined by identifier: size bytes of SourceDataIdentifier starting at the
// 1-based Position are mapped into the target DataIdentifier.
type IdentifierSource struct {
	DataIdentifier       int // target dynamicallyDefinedDataIdentifier, 2 bytes
	SourceDataIdentifier int // 2 bytes
	Position             int // positionInSourceDataRecord, 1 byte
	Size                 int // memorySize, 1 byte
}

// MemorySource describes one source slice for a dynamic data identifier
// defined by memory address. The address and size widths are taken from the
// AddressAndLengthFormatIdentifier nibbles, exactly as in
// ReadMemoryByAddress.
type MemorySource struct {
	DataIdentifier                   int // target dynamicallyDefinedDataIdentifier, 2 bytes
	AddressAndLengthFormatIdentifier int
	MemoryAddress                    int
	MemorySize                       int
}

// DataIdentifierDefinition is the tagged-variant parameter of
// DynamicallyDefineDataIdentifier. Type selects the definition sub-function
// and which payload field is read:
//
//   - uds.DefineByIdentifier: Identifiers
//   - uds.DefineByMemoryAddress: Memory
//   - uds.ClearDynamicallyDefinedDataIdentifier: ClearIdentifier
//
// The other fields are ignored.
type DataIdentifierDefinition struct {
	Type            int
	Identifiers     []IdentifierSource
	Memory          []MemorySource
	ClearIdentifier int
}

// DynamicallyDefineDataIdentifier encodes a request to define, or clear, a
// data identifier that can later be read via ReadDataByIdentifier.
//
// An unrecognized definition type is reported through the builder's logger
// and the returned request carries only the service identifier and the
// definition type byte, with all supporting parameters omitted. This is a
// deliberate non-fatal fallback; no error is returned.
func (b *Builder) DynamicallyDefineDataIdentifier(def DataIdentifierDefinition) string {
	tokens := []string{sidTok(uds.DDDI), b.byteTok(uds.DDDI, "definitionType", def.Type)}

	switch def.Type {
	case uds.DefineByIdentifier:
		for _, src := range def.Identifiers {
			tokens = append(tokens,
				b.wordTok(uds.DDDI, "dataIdentifier", src.DataIdentifier),
				b.wordTok(uds.DDDI, "sourceDataIdentifier", src.SourceDataIdentifier),
				b.byteTok(uds.DDDI, "positionInSourceDataRecord", src.Position),
				b.byteTok(uds.DDDI, "memorySize", src.Size),
			)
		}
	case uds.DefineByMemoryAddress:
		for _, src := range def.Memory {
			addressWidth, sizeWidth := addressWidths(src.AddressAndLengthFormatIdentifier)
			tokens = append(tokens,
				b.wordTok(uds.DDDI, "dataIdentifier", src.DataIdentifier),
				b.byteTok(uds.DDDI, "addressAndLengthFormatIdentifier", src.AddressAndLengthFormatIdentifier),
				hexenc.Fixed(src.MemoryAddress, addressWidth),
				hexenc.Fixed(src.MemorySize, sizeWidth),
			)
		}
	case uds.ClearDynamicallyDefinedDataIdentifier:
		tokens = append(tokens, b.wordTok(uds.DDDI, "dataIdentifier", def.ClearIdentifier))
	default:
		b.logger.Warn("unrecognized definition type, request encoded without supporting parameters",
			"service", uds.DDDI.String(), "definitionType", def.Type)
	}

	return join(tokens...)
}

// DefineDataIdentifierByIdentifier encodes a defineByIdentifier request from
// one or more source slices.
func (b *Builder) DefineDataIdentifierByIdentifier(sources ...IdentifierSource) string {
	return b.DynamicallyDefineDataIdentifier(DataIdentifierDefinition{
		Type:        uds.DefineByIdentifier,
		Identifiers: sources,
	})
}

// DefineDataIdentifierByMemoryAddress encodes a defineByMemoryAddress request
// from one or more memory source slices.
func (b *Builder) DefineDataIdentifierByMemoryAddress(sources ...MemorySource) string {
	return b.DynamicallyDefineDataIdentifier(DataIdentifierDefinition{
		Type:   uds.DefineByMemoryAddress,
		Memory: sources,
	})
}

// ClearDynamicallyDefinedDataIdentifier encodes a request clearing a
// previously defined dynamic data identifier.
func (b *Builder) ClearDynamicallyDefinedDataIdentifier(dataIdentifier int) string {
	return b.DynamicallyDefineDataIdentifier(DataIdentifierDefinition{
		Type:            uds.ClearDynamicallyDefinedDataIdentifier,
		ClearIdentifier: dataIdentifier,
	})
}
