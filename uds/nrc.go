package uds

import (
	"fmt"
	"slices"
)

// NRC is a negative response code, the third byte of a UDS negative response.
// The encoder never consumes these; the catalog exists as a reference for
// callers interpreting server responses.
type NRC byte

// Negative response codes defined by ISO 14229-1.
const (
	GeneralReject                             NRC = 0x10
	ServiceNotSupported                       NRC = 0x11
	SubFunctionNotSupported                   NRC = 0x12
	IncorrectMessageLengthOrInvalidFormat     NRC = 0x13
	ResponseTooLong                           NRC = 0x14
	BusyRepeatRequest                         NRC = 0x21
	ConditionsNotCorrect                      NRC = 0x22
	RequestSequenceError                      NRC = 0x24
	NoResponseFromSubnetComponent             NRC = 0x25
	FailurePreventsExecutionOfRequestedAction NRC = 0x26
	RequestOutOfRange                         NRC = 0x31
	SecurityAccessDenied                      NRC = 0x33
	InvalidKey                                NRC = 0x35
	ExceededNumberOfAttempts                  NRC = 0x36
	RequiredTimeDelayNotExpired               NRC = 0x37
	UploadDownloadNotAccepted                 NRC = 0x70
	TransferDataSuspended                     NRC = 0x71
	GeneralProgrammingFailure                 NRC = 0x72
	WrongBlockSequenceCounter                 NRC = 0x73
	RequestCorrectlyReceivedResponsePending   NRC = 0x78
	SubFunctionNotSupportedInActiveSession    NRC = 0x7E
	ServiceNotSupportedInActiveSession        NRC = 0x7F
	RPMTooHigh                                NRC = 0x81
	RPMTooLow                                 NRC = 0x82
	EngineIsRunning                           NRC = 0x83
	EngineIsNotRunning                        NRC = 0x84
	EngineRunTimeTooLow                       NRC = 0x85
	TemperatureTooHigh                        NRC = 0x86
	TemperatureTooLow                         NRC = 0x87
	VehicleSpeedTooHigh                       NRC = 0x88
	VehicleSpeedTooLow                        NRC = 0x89
	ThrottleOrPedalTooHigh                    NRC = 0x8A
	ThrottleOrPedalTooLow                     NRC = 0x8B
	TransmissionRangeNotInNeutral             NRC = 0x8C
	TransmissionRangeNotInGear                NRC = 0x8D
	BrakeSwitchNotClosed                      NRC = 0x8F
	ShifterLeverNotInPark                     NRC = 0x90
	TorqueConverterClutchLocked               NRC = 0x91
	VoltageTooHigh                            NRC = 0x92
	VoltageTooLow                             NRC = 0x93
)

// Short mnemonics for the negative response codes.
const (
	GR      = GeneralReject
	SNS     = ServiceNotSupported
	SFNS    = SubFunctionNotSupported
	IMLOIF  = IncorrectMessageLengthOrInvalidFormat
	RTL     = ResponseTooLong
	BRR     = BusyRepeatRequest
	CNC     = ConditionsNotCorrect
	RSE     = RequestSequenceError
	NRFSC   = NoResponseFromSubnetComponent
	FPEORA  = FailurePreventsExecutionOfRequestedAction
	ROOR    = RequestOutOfRange
	SAD     = SecurityAccessDenied
	IK      = InvalidKey
	ENOA    = ExceededNumberOfAttempts
	RTDNE   = RequiredTimeDelayNotExpired
	UDNA    = UploadDownloadNotAccepted
	TDS     = TransferDataSuspended
	GPF     = GeneralProgrammingFailure
	WBSC    = WrongBlockSequenceCounter
	RCRRP   = RequestCorrectlyReceivedResponsePending
	SFNSIAS = SubFunctionNotSupportedInActiveSession
	SNSIAS  = ServiceNotSupportedInActiveSession
	RPMTH   = RPMTooHigh
	RPMTL   = RPMTooLow
	EIR     = EngineIsRunning
	EINR    = EngineIsNotRunning
	ERTTL   = EngineRunTimeTooLow
	TEMPTH  = TemperatureTooHigh
	TEMPTL  = TemperatureTooLow
	VSTH    = VehicleSpeedTooHigh
	VSTL    = VehicleSpeedTooLow
	TPTH    = ThrottleOrPedalTooHigh
	TPTL    = ThrottleOrPedalTooLow
	TRNIN   = TransmissionRangeNotInNeutral
	TRNIG   = TransmissionRangeNotInGear
	BSNC    = BrakeSwitchNotClosed
	SLNIP   = ShifterLeverNotInPark
	TCCL    = TorqueConverterClutchLocked
	VTH     = VoltageTooHigh
	VTL     = VoltageTooLow
)

var nrcNames = map[NRC]string{
	GeneralReject:                             "GeneralReject",
	ServiceNotSupported:                       "ServiceNotSupported",
	SubFunctionNotSupported:                   "SubFunctionNotSupported",
	IncorrectMessageLengthOrInvalidFormat:     "IncorrectMessageLengthOrInvalidFormat",
	ResponseTooLong:                           "ResponseTooLong",
	BusyRepeatRequest:                         "BusyRepeatRequest",
	ConditionsNotCorrect:                      "ConditionsNotCorrect",
	RequestSequenceError:                      "RequestSequenceError",
	NoResponseFromSubnetComponent:             "NoResponseFromSubnetComponent",
	FailurePreventsExecutionOfRequestedAction: "FailurePreventsExecutionOfRequestedAction",
	RequestOutOfRange:                         "RequestOutOfRange",
	SecurityAccessDenied:                      "SecurityAccessDenied",
	InvalidKey:                                "InvalidKey",
	ExceededNumberOfAttempts:                  "ExceededNumberOfAttempts",
	RequiredTimeDelayNotExpired:               "RequiredTimeDelayNotExpired",
	UploadDownloadNotAccepted:                 "UploadDownloadNotAccepted",
	TransferDataSuspended:                     "TransferDataSuspended",
	GeneralProgrammingFailure:                 "GeneralProgrammingFailure",
	WrongBlockSequenceCounter:                 "WrongBlockSequenceCounter",
	RequestCorrectlyReceivedResponsePending:   "RequestCorrectlyReceivedResponsePending",
	SubFunctionNotSupportedInActiveSession:    "SubFunctionNotSupportedInActiveSession",
	ServiceNotSupportedInActiveSession:        "ServiceNotSupportedInActiveSession",
	RPMTooHigh:                                "RPMTooHigh",
	RPMTooLow:                                 "RPMTooLow",
	EngineIsRunning:                           "EngineIsRunning",
	EngineIsNotRunning:                        "EngineIsNotRunning",
	EngineRunTimeTooLow:                       "EngineRunTimeTooLow",
	TemperatureTooHigh:                        "TemperatureTooHigh",
	TemperatureTooLow:                         "TemperatureTooLow",
	VehicleSpeedTooHigh:                       "VehicleSpeedTooHigh",
	VehicleSpeedTooLow:                        "VehicleSpeedTooLow",
	ThrottleOrPedalTooHigh:                    "ThrottleOrPedalTooHigh",
	ThrottleOrPedalTooLow:                     "ThrottleOrPedalTooLow",
	TransmissionRangeNotInNeutral:             "TransmissionRangeNotInNeutral",
	TransmissionRangeNotInGear:                "TransmissionRangeNotInGear",
	BrakeSwitchNotClosed:                      "BrakeSwitchNotClosed",
	ShifterLeverNotInPark:                     "ShifterLeverNotInPark",
	TorqueConverterClutchLocked:               "TorqueConverterClutchLocked",
	VoltageTooHigh:                            "VoltageTooHigh",
	VoltageTooLow:                             "VoltageTooLow",
}

// String returns the full ISO name of the negative response code, or the hex
// value for codes outside the catalog.
func (c NRC) String() string {
	if name, ok := nrcNames[c]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", byte(c))
}

// NRCValues returns all negative response codes in the catalog in ascending
// byte order.
func NRCValues() []NRC {
	values := make([]NRC, 0, len(nrcNames))
	for code := range nrcNames {
		values = append(values, code)
	}
	slices.Sort(values)
	return values
}
