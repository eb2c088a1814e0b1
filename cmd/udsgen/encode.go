package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arloliu/go-uds/internal/script"
	"github.com/arloliu/go-uds/request"
)

type encodeFlags struct {
	subFunction       string
	communicationType string
	nodeID            string
	dataIdentifier    string
	dataIdentifiers   []string
	record            []string
	mask              []string
	format            string
	address           string
	size              string
	dataFormat        string
	blockCounter      string
	groupOfDTC        string
	routineID         string
	strict            bool
}

func newEncodeCmd() *cobra.Command {
	flags := &encodeFlags{}

	cmd := &cobra.Command{
		Use:   "encode <service>",
		Short: "Encode a single UDS request",
		Long: `Encode one UDS request from flags. The service is named by its full ISO
name, its snake_case form, or its short mnemonic. Numeric values accept
decimal or 0x-prefixed hexadecimal notation.`,
		Example: `  udsgen encode diagnostic_session_control --sub-function 0x03
  udsgen encode RDBI --did 0xF190 --did 0xF187
  udsgen encode request_download --data-format 0 --format 0x44 --address 0x08000000 --size 0x1000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.subFunction, "sub-function", "", "Sub-function byte (session type, reset type, report type, ...)")
	cmd.Flags().StringVar(&flags.communicationType, "communication-type", "", "CommunicationControl communicationType byte")
	cmd.Flags().StringVar(&flags.nodeID, "node-id", "", "CommunicationControl 2-byte nodeIdentificationNumber")
	cmd.Flags().StringVar(&flags.dataIdentifier, "data-identifier", "", "2-byte data identifier")
	cmd.Flags().StringArrayVar(&flags.dataIdentifiers, "did", nil, "Data identifier, repeatable")
	cmd.Flags().StringArrayVar(&flags.record, "record", nil, "Record byte, repeatable")
	cmd.Flags().StringArrayVar(&flags.mask, "mask", nil, "Control enable mask byte, repeatable")
	cmd.Flags().StringVar(&flags.format, "format", "", "addressAndLengthFormatIdentifier byte")
	cmd.Flags().StringVar(&flags.address, "address", "", "Memory address")
	cmd.Flags().StringVar(&flags.size, "size", "", "Memory size")
	cmd.Flags().StringVar(&flags.dataFormat, "data-format", "", "dataFormatIdentifier byte")
	cmd.Flags().StringVar(&flags.blockCounter, "block-counter", "", "TransferData block sequence counter")
	cmd.Flags().StringVar(&flags.groupOfDTC, "group-of-dtc", "", "3-byte DTC group to clear")
	cmd.Flags().StringVar(&flags.routineID, "routine-id", "", "2-byte routine identifier")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Report parameters truncated by masking")

	return cmd
}

func runEncode(cmd *cobra.Command, service string, flags *encodeFlags) error {
	req := script.Request{Service: service}

	var err error
	if req.SubFunction, err = optionalValue("sub-function", flags.subFunction); err != nil {
		return err
	}
	if req.CommunicationType, err = optionalValue("communication-type", flags.communicationType); err != nil {
		return err
	}
	if req.NodeID, err = optionalValue("node-id", flags.nodeID); err != nil {
		return err
	}
	if req.DataIdentifier, err = optionalValue("data-identifier", flags.dataIdentifier); err != nil {
		return err
	}
	if req.DataIdentifiers, err = valueList("did", flags.dataIdentifiers); err != nil {
		return err
	}
	if req.Record, err = valueList("record", flags.record); err != nil {
		return err
	}
	if req.Mask, err = valueList("mask", flags.mask); err != nil {
		return err
	}
	if req.Format, err = optionalValue("format", flags.format); err != nil {
		return err
	}
	if req.Address, err = optionalValue("address", flags.address); err != nil {
		return err
	}
	if req.Size, err = optionalValue("size", flags.size); err != nil {
		return err
	}
	if req.DataFormat, err = optionalValue("data-format", flags.dataFormat); err != nil {
		return err
	}
	if req.BlockCounter, err = optionalValue("block-counter", flags.blockCounter); err != nil {
		return err
	}
	if req.GroupOfDTC, err = optionalValue("group-of-dtc", flags.groupOfDTC); err != nil {
		return err
	}
	if req.RoutineID, err = optionalValue("routine-id", flags.routineID); err != nil {
		return err
	}

	encoded, err := req.Encode(request.New(request.WithStrict(flags.strict)))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return nil
}

// parseValue parses a decimal or 0x-prefixed hexadecimal integer.
func parseValue(flag, value string) (int, error) {
	v, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for --%s", value, flag)
	}
	return int(v), nil
}

func optionalValue(flag, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	v, err := parseValue(flag, value)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func valueList(flag string, values []string) ([]int, error) {
	if len(values) == 0 {
		return nil, nil
	}
	parsed := make([]int, 0, len(values))
	for _, value := range values {
		v, err := parseValue(flag, value)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, v)
	}
	return parsed, nil
}
