package request

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-uds/logger"
	"github.com/arloliu/go-uds/uds"
)

func TestDynamicallyDefineDataIdentifier_ByIdentifier(t *testing.T) {
	require := require.New(t)
	b := New()

	encoded := b.DefineDataIdentifierByIdentifier(
		IdentifierSource{DataIdentifier: 0xF301, SourceDataIdentifier: 0x1234, Position: 0x01, Size: 0x02},
	)
	require.Equal("2C 01 F3 01 12 34 01 02", encoded)

	encoded = b.DefineDataIdentifierByIdentifier(
		IdentifierSource{DataIdentifier: 0xF301, SourceDataIdentifier: 0x1234, Position: 0x01, Size: 0x02},
		IdentifierSource{DataIdentifier: 0xF301, SourceDataIdentifier: 0xF190, Position: 0x03, Size: 0x01},
	)
	require.Equal("2C 01 F3 01 12 34 01 02 F3 01 F1 90 03 01", encoded)
}

func TestDynamicallyDefineDataIdentifier_ByMemoryAddress(t *testing.T) {
	require := require.New(t)
	b := New()

	// format identifier 0x24: 4-byte address, 2-byte size
	encoded := b.DefineDataIdentifierByMemoryAddress(
		MemorySource{
			DataIdentifier:                   0xF302,
			AddressAndLengthFormatIdentifier: 0x24,
			MemoryAddress:                    0x1000,
			MemorySize:                       0x0100,
		},
	)
	require.Equal("2C 02 F3 02 24 00 00 10 00 01 00", encoded)
}

func TestDynamicallyDefineDataIdentifier_Clear(t *testing.T) {
	require := require.New(t)
	b := New()

	require.Equal("2C 03 F3 01", b.ClearDynamicallyDefinedDataIdentifier(0xF301))
}

func TestDynamicallyDefineDataIdentifier_UnrecognizedType(t *testing.T) {
	require := require.New(t)

	mockLogger := logger.NewMockLogger()
	mockLogger.On("Warn", mock.Anything, mock.Anything).Return()

	b := New(WithLogger(mockLogger))

	// the request still carries the SID and the definition type byte,
	// supporting parameters are omitted
	encoded := b.DynamicallyDefineDataIdentifier(DataIdentifierDefinition{
		Type: 0x09,
		Identifiers: []IdentifierSource{
			{DataIdentifier: 0xF301, SourceDataIdentifier: 0x1234, Position: 0x01, Size: 0x02},
		},
	})
	require.Equal("2C 09", encoded)

	mockLogger.AssertCalled(t, "Warn", "unrecognized definition type, request encoded without supporting parameters", mock.Anything)
	mockLogger.AssertNumberOfCalls(t, "Warn", 1)
}

func TestDynamicallyDefineDataIdentifier_TaggedVariantRecord(t *testing.T) {
	require := require.New(t)
	b := New()

	def := DataIdentifierDefinition{
		Type: uds.DefineByIdentifier,
		Identifiers: []IdentifierSource{
			{DataIdentifier: 0xF301, SourceDataIdentifier: 0x1234, Position: 0x01, Size: 0x02},
		},
		// fields of other variants are ignored
		Memory:          []MemorySource{{DataIdentifier: 0xF999}},
		ClearIdentifier: 0xF999,
	}
	require.Equal("2C 01 F3 01 12 34 01 02", b.DynamicallyDefineDataIdentifier(def))
}
