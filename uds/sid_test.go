package uds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSID_AliasAndNameResolveSameValue(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		longName SID
		alias    SID
		value    byte
	}{
		{DiagnosticSessionControl, DSC, 0x10},
		{ECUReset, ER, 0x11},
		{ClearDiagnosticInformation, CDTCI, 0x14},
		{ReadDTCInformation, RDTCI, 0x19},
		{ReadDataByIdentifier, RDBI, 0x22},
		{ReadMemoryByAddress, RMBA, 0x23},
		{ReadScalingDataByIdentifier, RSDBI, 0x24},
		{SecurityAccess, SA, 0x27},
		{CommunicationControl, CC, 0x28},
		{ReadDataByPeriodicIdentifier, RDBPI, 0x2A},
		{DynamicallyDefineDataIdentifier, DDDI, 0x2C},
		{WriteDataByIdentifier, WDBI, 0x2E},
		{InputOutputControlByIdentifier, IOCBI, 0x2F},
		{RoutineControl, RC, 0x31},
		{RequestDownload, RD, 0x34},
		{RequestUpload, RU, 0x35},
		{TransferData, TD, 0x36},
		{RequestTransferExit, RTE, 0x37},
		{RequestFileTransfer, RFT, 0x38},
		{WriteMemoryByAddress, WMBA, 0x3D},
		{TesterPresent, TP, 0x3E},
		{NegativeResponse, NR, 0x7F},
		{AccessTimingParameter, ATP, 0x83},
		{SecuredDataTransmission, SDT, 0x84},
		{ControlDTCSetting, CDTCS, 0x85},
		{ResponseOnEvent, ROE, 0x86},
		{LinkControl, LC, 0x87},
	}

	for _, test := range tests {
		require.Equal(test.longName, test.alias)
		require.Equal(test.value, byte(test.longName))
	}

	// every cataloged SID has both views
	require.Len(sidAliases, len(sidNames))
}

func TestSIDByName(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		desc     string
		name     string
		expected SID
		found    bool
	}{
		{desc: "full name", name: "DiagnosticSessionControl", expected: DiagnosticSessionControl, found: true},
		{desc: "snake case name", name: "diagnostic_session_control", expected: DiagnosticSessionControl, found: true},
		{desc: "short alias", name: "DSC", expected: DiagnosticSessionControl, found: true},
		{desc: "lowercase alias", name: "rdbi", expected: ReadDataByIdentifier, found: true},
		{desc: "acronym run kept as one word", name: "ecu_reset", expected: ECUReset, found: true},
		{desc: "dtc acronym", name: "read_dtc_information", expected: ReadDTCInformation, found: true},
		{desc: "surrounding whitespace", name: " tester_present ", expected: TesterPresent, found: true},
		{desc: "unknown name", name: "no_such_service", found: false},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		sid, ok := SIDByName(test.name)
		require.Equal(test.found, ok)
		if test.found {
			require.Equal(test.expected, sid)
		}
	}
}

func TestSID_StringAndAlias(t *testing.T) {
	require := require.New(t)

	require.Equal("DiagnosticSessionControl", DiagnosticSessionControl.String())
	require.Equal("DSC", DiagnosticSessionControl.Alias())
	require.Equal("ReadDTCInformation", RDTCI.String())
	require.Equal("0x42", SID(0x42).String())
	require.Equal("0x42", SID(0x42).Alias())
}

func TestSIDValues(t *testing.T) {
	require := require.New(t)

	values := SIDValues()
	require.Len(values, len(sidNames))
	require.Equal(DiagnosticSessionControl, values[0])
	require.Equal(LinkControl, values[len(values)-1])
	for i := 1; i < len(values); i++ {
		require.Less(values[i-1], values[i])
	}
}
