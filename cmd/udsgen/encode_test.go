package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, newCmd func() *cobra.Command, args ...string) (string, error) {
	t.Helper()

	cmd := newCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEncodeCmd(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		desc     string
		args     []string
		expected string
	}{
		{
			desc:     "session control by snake case name",
			args:     []string{"diagnostic_session_control", "--sub-function", "0x03"},
			expected: "10 03\n",
		},
		{
			desc:     "read data by identifier by mnemonic with repeated dids",
			args:     []string{"RDBI", "--did", "0xF190", "--did", "0xF187"},
			expected: "22 F1 90 F1 87\n",
		},
		{
			desc:     "request download with memory fields",
			args:     []string{"request_download", "--data-format", "0", "--format", "0x44", "--address", "0x08000000", "--size", "0x1000"},
			expected: "34 00 44 08 00 00 00 00 00 10 00\n",
		},
		{
			desc:     "decimal values accepted",
			args:     []string{"ecu_reset", "--sub-function", "1"},
			expected: "11 01\n",
		},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.desc)
		out, err := runCommand(t, newEncodeCmd, test.args...)
		require.NoError(err)
		require.Equal(test.expected, out)
	}
}

func TestEncodeCmd_Errors(t *testing.T) {
	require := require.New(t)

	_, err := runCommand(t, newEncodeCmd, "no_such_service", "--sub-function", "1")
	require.ErrorContains(err, "unknown service")

	_, err = runCommand(t, newEncodeCmd, "ecu_reset", "--sub-function", "banana")
	require.ErrorContains(err, `invalid value "banana" for --sub-function`)

	_, err = runCommand(t, newEncodeCmd, "ecu_reset")
	require.ErrorContains(err, `requires field "sub_function"`)
}

func TestBatchCmd(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(os.WriteFile(path, []byte(`
requests:
  - service: diagnostic_session_control
    sub_function: 0x01
  - service: tester_present
`), 0o600))

	out, err := runCommand(t, newBatchCmd, path)
	require.NoError(err)
	require.Equal("10 01\n3E 00\n", out)
}

func TestBatchCmd_MissingFile(t *testing.T) {
	require := require.New(t)

	_, err := runCommand(t, newBatchCmd, filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(err, "read request script")
}

func TestListCmd(t *testing.T) {
	require := require.New(t)

	out, err := runCommand(t, newListCmd, "sid")
	require.NoError(err)
	require.Contains(out, "0x10  DSC    DiagnosticSessionControl")
	require.Contains(out, "0x22  RDBI   ReadDataByIdentifier")

	out, err = runCommand(t, newListCmd, "nrc")
	require.NoError(err)
	require.Contains(out, "0x33  SecurityAccessDenied")

	out, err = runCommand(t, newListCmd, "did")
	require.NoError(err)
	require.Contains(out, "0xF190  VIN")
}
