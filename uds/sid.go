package uds

import (
	"fmt"
	"slices"
	"strings"
)

// SID is a UDS service identifier, the first byte of every request.
type SID byte

// Service identifiers defined by ISO 14229-1.
const (
	// Diagnostic and communication management
	DiagnosticSessionControl SID = 0x10
	ECUReset                 SID = 0x11
	SecurityAccess           SID = 0x27
	CommunicationControl     SID = 0x28
	TesterPresent            SID = 0x3E
	AccessTimingParameter    SID = 0x83
	SecuredDataTransmission  SID = 0x84
	ControlDTCSetting        SID = 0x85
	ResponseOnEvent          SID = 0x86
	LinkControl              SID = 0x87

	// Data transmission
	ReadDataByIdentifier            SID = 0x22
	ReadMemoryByAddress             SID = 0x23
	ReadScalingDataByIdentifier     SID = 0x24
	ReadDataByPeriodicIdentifier    SID = 0x2A
	DynamicallyDefineDataIdentifier SID = 0x2C
	WriteDataByIdentifier           SID = 0x2E
	WriteMemoryByAddress            SID = 0x3D

	// Stored data transmission
	ClearDiagnosticInformation SID = 0x14
	ReadDTCInformation         SID = 0x19

	// Input output control
	InputOutputControlByIdentifier SID = 0x2F

	// Remote activation of routine
	RoutineControl SID = 0x31

	// Upload download
	RequestDownload     SID = 0x34
	RequestUpload       SID = 0x35
	TransferData        SID = 0x36
	RequestTransferExit SID = 0x37
	RequestFileTransfer SID = 0x38

	// Negative response
	NegativeResponse SID = 0x7F
)

// Short mnemonics from the ISO 14229-1 service tables. Each alias resolves to
// the same constant as its full name.
const (
	DSC   = DiagnosticSessionControl
	ER    = ECUReset
	SA    = SecurityAccess
	CC    = CommunicationControl
	TP    = TesterPresent
	ATP   = AccessTimingParameter
	SDT   = SecuredDataTransmission
	CDTCS = ControlDTCSetting
	ROE   = ResponseOnEvent
	LC    = LinkControl
	RDBI  = ReadDataByIdentifier
	RMBA  = ReadMemoryByAddress
	RSDBI = ReadScalingDataByIdentifier
	RDBPI = ReadDataByPeriodicIdentifier
	DDDI  = DynamicallyDefineDataIdentifier
	WDBI  = WriteDataByIdentifier
	WMBA  = WriteMemoryByAddress
	CDTCI = ClearDiagnosticInformation
	RDTCI = ReadDTCInformation
	IOCBI = InputOutputControlByIdentifier
	RC    = RoutineControl
	RD    = RequestDownload
	RU    = RequestUpload
	TD    = TransferData
	RTE   = RequestTransferExit
	RFT   = RequestFileTransfer
	NR    = NegativeResponse
)

var sidNames = map[SID]string{
	DiagnosticSessionControl:        "DiagnosticSessionControl",
	ECUReset:                        "ECUReset",
	SecurityAccess:                  "SecurityAccess",
	CommunicationControl:            "CommunicationControl",
	TesterPresent:                   "TesterPresent",
	AccessTimingParameter:           "AccessTimingParameter",
	SecuredDataTransmission:         "SecuredDataTransmission",
	ControlDTCSetting:               "ControlDTCSetting",
	ResponseOnEvent:                 "ResponseOnEvent",
	LinkControl:                     "LinkControl",
	ReadDataByIdentifier:            "ReadDataByIdentifier",
	ReadMemoryByAddress:             "ReadMemoryByAddress",
	ReadScalingDataByIdentifier:     "ReadScalingDataByIdentifier",
	ReadDataByPeriodicIdentifier:    "ReadDataByPeriodicIdentifier",
	DynamicallyDefineDataIdentifier: "DynamicallyDefineDataIdentifier",
	WriteDataByIdentifier:           "WriteDataByIdentifier",
	WriteMemoryByAddress:            "WriteMemoryByAddress",
	ClearDiagnosticInformation:      "ClearDiagnosticInformation",
	ReadDTCInformation:              "ReadDTCInformation",
	InputOutputControlByIdentifier:  "InputOutputControlByIdentifier",
	RoutineControl:                  "RoutineControl",
	RequestDownload:                 "RequestDownload",
	RequestUpload:                   "RequestUpload",
	TransferData:                    "TransferData",
	RequestTransferExit:             "RequestTransferExit",
	RequestFileTransfer:             "RequestFileTransfer",
	NegativeResponse:                "NegativeResponse",
}

var sidAliases = map[SID]string{
	DiagnosticSessionControl:        "DSC",
	ECUReset:                        "ER",
	SecurityAccess:                  "SA",
	CommunicationControl:            "CC",
	TesterPresent:                   "TP",
	AccessTimingParameter:           "ATP",
	SecuredDataTransmission:         "SDT",
	ControlDTCSetting:               "CDTCS",
	ResponseOnEvent:                 "ROE",
	LinkControl:                     "LC",
	ReadDataByIdentifier:            "RDBI",
	ReadMemoryByAddress:             "RMBA",
	ReadScalingDataByIdentifier:     "RSDBI",
	ReadDataByPeriodicIdentifier:    "RDBPI",
	DynamicallyDefineDataIdentifier: "DDDI",
	WriteDataByIdentifier:           "WDBI",
	WriteMemoryByAddress:            "WMBA",
	ClearDiagnosticInformation:      "CDTCI",
	ReadDTCInformation:              "RDTCI",
	InputOutputControlByIdentifier:  "IOCBI",
	RoutineControl:                  "RC",
	RequestDownload:                 "RD",
	RequestUpload:                   "RU",
	TransferData:                    "TD",
	RequestTransferExit:             "RTE",
	RequestFileTransfer:             "RFT",
	NegativeResponse:                "NR",
}

var sidByName = func() map[string]SID {
	m := make(map[string]SID, len(sidNames)*3)
	for sid, name := range sidNames {
		m[strings.ToLower(name)] = sid
		m[camelToSnake(name)] = sid
	}
	for sid, alias := range sidAliases {
		m[strings.ToLower(alias)] = sid
	}
	return m
}()

// String returns the full ISO name of the service identifier, or the hex
// value for identifiers outside the catalog.
func (s SID) String() string {
	if name, ok := sidNames[s]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", byte(s))
}

// Alias returns the short mnemonic of the service identifier, or the hex
// value for identifiers outside the catalog.
func (s SID) Alias() string {
	if alias, ok := sidAliases[s]; ok {
		return alias
	}
	return fmt.Sprintf("0x%02X", byte(s))
}

// SIDByName resolves a service identifier from its full ISO name
// ("DiagnosticSessionControl" or "diagnostic_session_control") or its short
// mnemonic ("DSC"). Matching is case-insensitive.
func SIDByName(name string) (SID, bool) {
	sid, ok := sidByName[strings.ToLower(strings.TrimSpace(name))]
	return sid, ok
}

// SIDValues returns all service identifiers in the catalog in ascending
// byte order.
func SIDValues() []SID {
	values := make([]SID, 0, len(sidNames))
	for sid := range sidNames {
		values = append(values, sid)
	}
	slices.Sort(values)
	return values
}

// camelToSnake converts "DiagnosticSessionControl" to
// "diagnostic_session_control", keeping acronym runs such as "ECU" and "DTC"
// as a single word.
func camelToSnake(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 8)
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			prevLower := i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if i > 0 && (prevLower || nextLower) {
				sb.WriteByte('_')
			}
			sb.WriteRune(r - 'A' + 'a')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
