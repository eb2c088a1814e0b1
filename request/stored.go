package request

import (
	"github.com/arloliu/go-uds/internal/hexenc"
	"github.com/arloliu/go-uds/uds"
)

// Stored data transmission services.

// ClearDiagnosticInformation encodes a request to clear diagnostic
// information. groupOfDTC is the 3-byte DTC group or the particular DTC to
// clear, e.g. 0xFFFFFF for all groups; it is rendered as its minimal
// big-endian byte sequence.
func (b *Builder) ClearDiagnosticInformation(groupOfDTC int) string {
	return join(sidTok(uds.CDTCI), hexenc.Minimal(groupOfDTC))
}

// ReadDTCInformation encodes a request for server resident DTC information.
// reportType selects the report sub-function, e.g.
// uds.ReportDTCByStatusMask; arguments carries the remaining bytes that
// sub-function requires, such as a status mask or a DTC number.
func (b *Builder) ReadDTCInformation(reportType int, arguments ...int) string {
	return join(sidTok(uds.RDTCI), b.byteTok(uds.RDTCI, "reportType", reportType), hexenc.List(arguments))
}

// Input output control services.

// InputOutputControlByIdentifier encodes a request to substitute or force the
// value of an input or output signal. controlOptionRecord holds the
// inputOutputControlParameter and control states; the optional
// controlEnableMaskRecord selects which elements the control applies to.
func (b *Builder) InputOutputControlByIdentifier(dataIdentifier int, controlOptionRecord []int, controlEnableMaskRecord ...int) string {
	return join(
		sidTok(uds.IOCBI),
		hexenc.Minimal(dataIdentifier),
		hexenc.List(controlOptionRecord),
		hexenc.List(controlEnableMaskRecord),
	)
}

// Remote activation of routine services.

// RoutineControl encodes a request to start or stop a routine, or fetch its
// results. controlType is uds.StartRoutine, uds.StopRoutine or
// uds.RequestRoutineResult; the optional optionRecord carries routine
// entry/exit parameters.
func (b *Builder) RoutineControl(controlType, routineIdentifier int, optionRecord ...int) string {
	return join(
		sidTok(uds.RC),
		b.byteTok(uds.RC, "routineControlType", controlType),
		hexenc.Minimal(routineIdentifier),
		hexenc.List(optionRecord),
	)
}
