// Package script parses YAML request scripts and encodes them into UDS
// request strings. A script is a list of named service invocations:
//
//	requests:
//	  - service: diagnostic_session_control
//	    sub_function: 0x03
//	  - service: read_data_by_identifier
//	    data_identifiers: [0xF190, 0xF187]
//
// Service names resolve through uds.SIDByName, so both full names and short
// mnemonics are accepted. Parameter fields are shared across services; each
// service reads the fields its byte layout requires and rejects the request
// when a required field is missing.
package script

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/go-uds/request"
	"github.com/arloliu/go-uds/uds"
)

// Script is a parsed request script.
type Script struct {
	Requests []Request `yaml:"requests"`
}

// Request is one service invocation in a script. Only the fields used by the
// named service are read; YAML integers accept hex notation.
type Request struct {
	Service string `yaml:"service"`

	SubFunction       *int  `yaml:"sub_function,omitempty"`
	CommunicationType *int  `yaml:"communication_type,omitempty"`
	NodeID            *int  `yaml:"node_id,omitempty"`
	DataIdentifier    *int  `yaml:"data_identifier,omitempty"`
	DataIdentifiers   []int `yaml:"data_identifiers,omitempty"`
	Record            []int `yaml:"record,omitempty"`
	Mask              []int `yaml:"mask,omitempty"`
	Format            *int  `yaml:"format,omitempty"`
	Address           *int  `yaml:"address,omitempty"`
	Size              *int  `yaml:"size,omitempty"`
	DataFormat        *int  `yaml:"data_format,omitempty"`
	BlockCounter      *int  `yaml:"block_counter,omitempty"`
	GroupOfDTC        *int  `yaml:"group_of_dtc,omitempty"`
	RoutineID         *int  `yaml:"routine_id,omitempty"`
}

// Parse decodes a YAML request script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse request script: %w", err)
	}
	if len(s.Requests) == 0 {
		return nil, fmt.Errorf("request script contains no requests")
	}
	return &s, nil
}

// Encode encodes every request in the script through b, in script order.
// Encoding stops at the first invalid request.
func (s *Script) Encode(b *request.Builder) ([]string, error) {
	encoded := make([]string, 0, len(s.Requests))
	for i, req := range s.Requests {
		line, err := req.Encode(b)
		if err != nil {
			return nil, fmt.Errorf("request #%d: %w", i+1, err)
		}
		encoded = append(encoded, line)
	}
	return encoded, nil
}

// Encode encodes a single script request through b.
func (r *Request) Encode(b *request.Builder) (string, error) { //nolint:gocyclo,cyclop
	sid, ok := uds.SIDByName(r.Service)
	if !ok {
		return "", fmt.Errorf("unknown service %q", r.Service)
	}

	switch sid {
	case uds.DiagnosticSessionControl:
		sub, err := r.require("sub_function", r.SubFunction)
		if err != nil {
			return "", err
		}
		return b.DiagnosticSessionControl(sub), nil

	case uds.ECUReset:
		sub, err := r.require("sub_function", r.SubFunction)
		if err != nil {
			return "", err
		}
		return b.ECUReset(sub), nil

	case uds.SecurityAccess:
		sub, err := r.require("sub_function", r.SubFunction)
		if err != nil {
			return "", err
		}
		return b.SecurityAccess(sub, r.Record...), nil

	case uds.CommunicationControl:
		sub, err := r.require("sub_function", r.SubFunction)
		if err != nil {
			return "", err
		}
		commType, err := r.require("communication_type", r.CommunicationType)
		if err != nil {
			return "", err
		}
		if r.NodeID != nil {
			return b.CommunicationControlWithNodeID(sub, commType, *r.NodeID), nil
		}
		return b.CommunicationControl(sub, commType), nil

	case uds.TesterPresent:
		sub := 0
		if r.SubFunction != nil {
			sub = *r.SubFunction
		}
		return b.TesterPresent(sub), nil

	case uds.AccessTimingParameter:
		sub, err := r.require("sub_function", r.SubFunction)
		if err != nil {
			return "", err
		}
		return b.AccessTimingParameter(sub, r.Record...), nil

	case uds.SecuredDataTransmission:
		if len(r.Record) == 0 {
			return "", r.missing("record")
		}
		return b.SecuredDataTransmission(r.Record), nil

	case uds.ControlDTCSetting:
		sub, err := r.require("sub_function", r.SubFunction)
		if err != nil {
			return "", err
		}
		return b.ControlDTCSetting(sub, r.Record...), nil

	case uds.LinkControl:
		sub, err := r.require("sub_function", r.SubFunction)
		if err != nil {
			return "", err
		}
		return b.LinkControl(sub), nil

	case uds.ReadDataByIdentifier:
		if len(r.DataIdentifiers) == 0 {
			return "", r.missing("data_identifiers")
		}
		return b.ReadDataByIdentifier(r.DataIdentifiers...), nil

	case uds.ReadMemoryByAddress:
		format, address, size, err := r.memoryFields()
		if err != nil {
			return "", err
		}
		return b.ReadMemoryByAddress(format, address, size), nil

	case uds.ReadScalingDataByIdentifier:
		did, err := r.require("data_identifier", r.DataIdentifier)
		if err != nil {
			return "", err
		}
		return b.ReadScalingDataByIdentifier(did), nil

	case uds.ReadDataByPeriodicIdentifier:
		sub, err := r.require("sub_function", r.SubFunction)
		if err != nil {
			return "", err
		}
		if len(r.Record) == 0 {
			return "", r.missing("record")
		}
		return b.ReadDataByPeriodicIdentifier(sub, r.Record...), nil

	case uds.WriteDataByIdentifier:
		did, err := r.require("data_identifier", r.DataIdentifier)
		if err != nil {
			return "", err
		}
		if len(r.Record) == 0 {
			return "", r.missing("record")
		}
		return b.WriteDataByIdentifier(did, r.Record), nil

	case uds.WriteMemoryByAddress:
		format, address, size, err := r.memoryFields()
		if err != nil {
			return "", err
		}
		if len(r.Record) == 0 {
			return "", r.missing("record")
		}
		return b.WriteMemoryByAddress(format, address, size, r.Record), nil

	case uds.ClearDiagnosticInformation:
		group, err := r.require("group_of_dtc", r.GroupOfDTC)
		if err != nil {
			return "", err
		}
		return b.ClearDiagnosticInformation(group), nil

	case uds.ReadDTCInformation:
		sub, err := r.require("sub_function", r.SubFunction)
		if err != nil {
			return "", err
		}
		return b.ReadDTCInformation(sub, r.Record...), nil

	case uds.InputOutputControlByIdentifier:
		did, err := r.require("data_identifier", r.DataIdentifier)
		if err != nil {
			return "", err
		}
		if len(r.Record) == 0 {
			return "", r.missing("record")
		}
		return b.InputOutputControlByIdentifier(did, r.Record, r.Mask...), nil

	case uds.RoutineControl:
		sub, err := r.require("sub_function", r.SubFunction)
		if err != nil {
			return "", err
		}
		routineID, err := r.require("routine_id", r.RoutineID)
		if err != nil {
			return "", err
		}
		return b.RoutineControl(sub, routineID, r.Record...), nil

	case uds.RequestDownload, uds.RequestUpload:
		dataFormat, err := r.require("data_format", r.DataFormat)
		if err != nil {
			return "", err
		}
		format, address, size, err := r.memoryFields()
		if err != nil {
			return "", err
		}
		if sid == uds.RequestDownload {
			return b.RequestDownload(dataFormat, format, address, size), nil
		}
		return b.RequestUpload(dataFormat, format, address, size), nil

	case uds.TransferData:
		counter, err := r.require("block_counter", r.BlockCounter)
		if err != nil {
			return "", err
		}
		return b.TransferData(counter, r.Record...), nil

	case uds.RequestTransferExit:
		return b.RequestTransferExit(r.Record...), nil

	default:
		return "", fmt.Errorf("service %s is not supported in request scripts", sid)
	}
}

// memoryFields collects the addressAndLengthFormatIdentifier-driven field
// triple shared by the memory services.
func (r *Request) memoryFields() (format, address, size int, err error) {
	if format, err = r.require("format", r.Format); err != nil {
		return 0, 0, 0, err
	}
	if address, err = r.require("address", r.Address); err != nil {
		return 0, 0, 0, err
	}
	if size, err = r.require("size", r.Size); err != nil {
		return 0, 0, 0, err
	}
	return format, address, size, nil
}

func (r *Request) require(field string, value *int) (int, error) {
	if value == nil {
		return 0, r.missing(field)
	}
	return *value, nil
}

func (r *Request) missing(field string) error {
	return fmt.Errorf("service %q requires field %q", r.Service, field)
}
