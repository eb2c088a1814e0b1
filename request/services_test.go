package request

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-uds/uds"
)

func TestManagementServices(t *testing.T) {
	require := require.New(t)
	b := New()

	tests := []struct {
		desc     string
		encoded  string
		expected string
	}{
		{
			desc:     "diagnostic session control, default session",
			encoded:  b.DiagnosticSessionControl(uds.DefaultSession),
			expected: "10 01",
		},
		{
			desc:     "diagnostic session control, programming session",
			encoded:  b.DiagnosticSessionControl(0x02),
			expected: "10 02",
		},
		{
			desc:     "ecu reset, hard reset",
			encoded:  b.ECUReset(uds.HardReset),
			expected: "11 01",
		},
		{
			desc:     "security access, request seed without data",
			encoded:  b.SecurityAccess(uds.RequestSeed),
			expected: "27 01",
		},
		{
			desc:     "security access, send key with data record",
			encoded:  b.SecurityAccess(0x01, 0xAA, 0xBB),
			expected: "27 01 AA BB",
		},
		{
			desc:     "communication control without node id",
			encoded:  b.CommunicationControl(uds.EnableRxAndTx, 0x01),
			expected: "28 00 01",
		},
		{
			desc:     "communication control, node id split high then low",
			encoded:  b.CommunicationControlWithNodeID(0x00, 0x01, 0x0102),
			expected: "28 00 01 01 02",
		},
		{
			desc:     "communication control, node id low byte zero padded",
			encoded:  b.CommunicationControlWithNodeID(0x04, 0x01, 0x0A05),
			expected: "28 04 01 0A 05",
		},
		{
			desc:     "tester present",
			encoded:  b.TesterPresent(uds.ZeroSubFunction),
			expected: "3E 00",
		},
		{
			desc:     "access timing parameter without record",
			encoded:  b.AccessTimingParameter(uds.ReadCurrentlyActiveTimingParameters),
			expected: "83 03",
		},
		{
			desc:     "access timing parameter with request record",
			encoded:  b.AccessTimingParameter(uds.SetTimingParametersToGivenValues, 0x00, 0x32),
			expected: "83 04 00 32",
		},
		{
			desc:     "secured data transmission",
			encoded:  b.SecuredDataTransmission([]int{0xDE, 0xAD, 0xBE, 0xEF}),
			expected: "84 DE AD BE EF",
		},
		{
			desc:     "control dtc setting off",
			encoded:  b.ControlDTCSetting(uds.Off),
			expected: "85 02",
		},
		{
			desc:     "control dtc setting with option record",
			encoded:  b.ControlDTCSetting(uds.On, 0xFF),
			expected: "85 01 FF",
		},
		{
			desc:     "response on event without records",
			encoded:  b.ResponseOnEvent(uds.StopResponseOnEvent, 0x02, nil, nil),
			expected: "86 00 02",
		},
		{
			desc:     "response on event with both records in standard order",
			encoded:  b.ResponseOnEvent(uds.OnDTCStatusChange, 0x02, []int{0x01}, []int{0x22, 0xF1, 0x90}),
			expected: "86 01 02 01 22 F1 90",
		},
		{
			desc:     "link control, transition mode",
			encoded:  b.LinkControl(uds.TransitionMode),
			expected: "87 03",
		},
		{
			desc:     "link control with fixed mode identifier",
			encoded:  b.LinkControlWithModeIdentifier(uds.VerifyModeTransitionWithFixedParameter, 0x05),
			expected: "87 01 05",
		},
		{
			desc:     "link control with specific 3-byte record",
			encoded:  b.LinkControlWithRecord(uds.VerifyModeTransitionWithSpecificParameter, 0x112233),
			expected: "87 02 11 22 33",
		},
		{
			desc:     "link control record zero padded to three bytes",
			encoded:  b.LinkControlWithRecord(0x02, 0x2233),
			expected: "87 02 00 22 33",
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		require.Equal(test.expected, test.encoded)
	}
}

func TestDataServices(t *testing.T) {
	require := require.New(t)
	b := New()

	tests := []struct {
		desc     string
		encoded  string
		expected string
	}{
		{
			desc:     "read data by identifier, both bytes zero padded",
			encoded:  b.ReadDataByIdentifier(0xF190),
			expected: "22 F1 90",
		},
		{
			desc:     "read data by identifier, low byte below 0x10",
			encoded:  b.ReadDataByIdentifier(0xF20A),
			expected: "22 F2 0A",
		},
		{
			desc:     "read data by identifier, identifiers concatenate in input order",
			encoded:  b.ReadDataByIdentifier(0xF190, 0xF187, 0x0102),
			expected: "22 F1 90 F1 87 01 02",
		},
		{
			desc:     "read memory by address, 4-byte address and 2-byte size",
			encoded:  b.ReadMemoryByAddress(0x24, 0x1000, 0x0100),
			expected: "23 24 00 00 10 00 01 00",
		},
		{
			desc:     "read memory by address, size truncated to declared 1-byte width",
			encoded:  b.ReadMemoryByAddress(0x14, 0x1000, 0x0100),
			expected: "23 14 00 00 10 00 00",
		},
		{
			desc:     "read scaling data by identifier",
			encoded:  b.ReadScalingDataByIdentifier(0xF190),
			expected: "24 F1 90",
		},
		{
			desc:     "read data by periodic identifier",
			encoded:  b.ReadDataByPeriodicIdentifier(0x01, 0xE3, 0x24),
			expected: "2A 01 E3 24",
		},
		{
			desc:     "write data by identifier",
			encoded:  b.WriteDataByIdentifier(0xF190, []int{0x57, 0x30, 0x4C}),
			expected: "2E F1 90 57 30 4C",
		},
		{
			desc:     "write data by identifier, identifier rendered minimally",
			encoded:  b.WriteDataByIdentifier(0x90, []int{0x01}),
			expected: "2E 90 01",
		},
		{
			desc:     "write memory by address with trailing data record",
			encoded:  b.WriteMemoryByAddress(0x24, 0x1000, 0x0002, []int{0xAA, 0xBB}),
			expected: "3D 24 00 00 10 00 00 02 AA BB",
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		require.Equal(test.expected, test.encoded)
	}
}

func TestStoredDataAndRoutineServices(t *testing.T) {
	require := require.New(t)
	b := New()

	tests := []struct {
		desc     string
		encoded  string
		expected string
	}{
		{
			desc:     "clear diagnostic information, all groups",
			encoded:  b.ClearDiagnosticInformation(0xFFFFFF),
			expected: "14 FF FF FF",
		},
		{
			desc:     "clear diagnostic information, emissions group",
			encoded:  b.ClearDiagnosticInformation(0xFFFF33),
			expected: "14 FF FF 33",
		},
		{
			desc:     "read dtc information by status mask",
			encoded:  b.ReadDTCInformation(uds.ReportDTCByStatusMask, 0x8F),
			expected: "19 02 8F",
		},
		{
			desc:     "read dtc information, supported dtc without arguments",
			encoded:  b.ReadDTCInformation(uds.ReportSupportedDTC),
			expected: "19 0A",
		},
		{
			desc:     "input output control without enable mask",
			encoded:  b.InputOutputControlByIdentifier(0xF301, []int{0x03, 0x00}),
			expected: "2F F3 01 03 00",
		},
		{
			desc:     "input output control with enable mask record",
			encoded:  b.InputOutputControlByIdentifier(0xF301, []int{0x03, 0x00}, 0x01),
			expected: "2F F3 01 03 00 01",
		},
		{
			desc:     "routine control, start routine",
			encoded:  b.RoutineControl(uds.StartRoutine, 0xFF01),
			expected: "31 01 FF 01",
		},
		{
			desc:     "routine control with option record",
			encoded:  b.RoutineControl(uds.StopRoutine, 0xFF01, 0x11, 0x22),
			expected: "31 02 FF 01 11 22",
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		require.Equal(test.expected, test.encoded)
	}
}

func TestTransferServices(t *testing.T) {
	require := require.New(t)
	b := New()

	tests := []struct {
		desc     string
		encoded  string
		expected string
	}{
		{
			desc:     "request download, widths from the format identifier nibbles",
			encoded:  b.RequestDownload(0x00, 0x44, 0x08000000, 0x1000),
			expected: "34 00 44 08 00 00 00 00 00 10 00",
		},
		{
			desc:     "request upload",
			encoded:  b.RequestUpload(0x00, 0x24, 0x2000, 0x0200),
			expected: "35 00 24 00 00 20 00 02 00",
		},
		{
			desc:     "transfer data with parameter record",
			encoded:  b.TransferData(0x01, 0xDE, 0xAD),
			expected: "36 01 DE AD",
		},
		{
			desc:     "transfer data without parameter record",
			encoded:  b.TransferData(0x02),
			expected: "36 02",
		},
		{
			desc:     "request transfer exit without record is the bare service identifier",
			encoded:  b.RequestTransferExit(),
			expected: "37",
		},
		{
			desc:     "request transfer exit keeps its own service identifier with a record",
			encoded:  b.RequestTransferExit(0xAA, 0xBB),
			expected: "37 AA BB",
		},
		{
			desc:     "request file transfer, delete file carries no size parameters",
			encoded:  b.RequestFileTransfer(0x02, 0x04, []int{0x2F, 0x64, 0x69, 0x72}),
			expected: "38 02 04 2F 64 69 72",
		},
		{
			desc:     "request file transfer with sizes",
			encoded: b.RequestFileTransferWithSizes(
				0x01, 0x02, []int{0x41, 0x42},
				0x00, 0x02,
				[]int{0x01, 0x00}, []int{0x00, 0x80},
			),
			expected: "38 01 02 41 42 00 02 01 00 00 80",
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		require.Equal(test.expected, test.encoded)
	}
}
