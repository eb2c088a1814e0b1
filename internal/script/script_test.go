package script

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-uds/request"
)

func TestParseAndEncode(t *testing.T) {
	require := require.New(t)

	data := []byte(`
requests:
  - service: diagnostic_session_control
    sub_function: 0x03
  - service: SA
    sub_function: 0x01
  - service: read_data_by_identifier
    data_identifiers: [0xF190, 0xF187]
  - service: write_data_by_identifier
    data_identifier: 0xF190
    record: [0x57, 0x30, 0x4C]
  - service: communication_control
    sub_function: 0x00
    communication_type: 0x01
    node_id: 0x0102
  - service: request_download
    data_format: 0x00
    format: 0x44
    address: 0x08000000
    size: 0x1000
  - service: transfer_data
    block_counter: 0x01
    record: [0xDE, 0xAD]
  - service: request_transfer_exit
  - service: tester_present
`)

	s, err := Parse(data)
	require.NoError(err)
	require.Len(s.Requests, 9)

	encoded, err := s.Encode(request.New())
	require.NoError(err)
	require.Equal([]string{
		"10 03",
		"27 01",
		"22 F1 90 F1 87",
		"2E F1 90 57 30 4C",
		"28 00 01 01 02",
		"34 00 44 08 00 00 00 00 00 10 00",
		"36 01 DE AD",
		"37",
		"3E 00",
	}, encoded)
}

func TestParse_Invalid(t *testing.T) {
	require := require.New(t)

	_, err := Parse([]byte("requests: ["))
	require.Error(err)

	_, err = Parse([]byte("requests: []"))
	require.ErrorContains(err, "no requests")
}

func TestEncode_Errors(t *testing.T) {
	require := require.New(t)
	b := request.New()

	tests := []struct {
		desc        string
		req         Request
		errContains string
	}{
		{
			desc:        "unknown service",
			req:         Request{Service: "no_such_service"},
			errContains: `unknown service "no_such_service"`,
		},
		{
			desc:        "missing required sub function",
			req:         Request{Service: "ecu_reset"},
			errContains: `requires field "sub_function"`,
		},
		{
			desc:        "missing data identifiers",
			req:         Request{Service: "read_data_by_identifier"},
			errContains: `requires field "data_identifiers"`,
		},
		{
			desc:        "missing memory field",
			req:         Request{Service: "read_memory_by_address", Format: intp(0x24)},
			errContains: `requires field "address"`,
		},
		{
			desc:        "unsupported script service",
			req:         Request{Service: "request_file_transfer"},
			errContains: "not supported in request scripts",
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		_, err := test.req.Encode(b)
		require.ErrorContains(err, test.errContains)
	}
}

func TestScriptEncode_StopsAtFirstInvalidRequest(t *testing.T) {
	require := require.New(t)

	s := &Script{Requests: []Request{
		{Service: "ecu_reset", SubFunction: intp(0x01)},
		{Service: "ecu_reset"},
	}}

	_, err := s.Encode(request.New())
	require.ErrorContains(err, "request #2")
}

func intp(v int) *int {
	return &v
}
