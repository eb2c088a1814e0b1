package request

import (
	"github.com/arloliu/go-uds/internal/hexenc"
	"github.com/arloliu/go-uds/uds"
)

// Diagnostic and communication management services.

// DiagnosticSessionControl encodes a request to enable a diagnostic session
// in the server. sessionType is the 1-byte diagnosticSessionType
// sub-function, e.g. uds.DefaultSession.
func (b *Builder) DiagnosticSessionControl(sessionType int) string {
	return join(sidTok(uds.DSC), b.byteTok(uds.DSC, "diagnosticSessionType", sessionType))
}

// ECUReset encodes a request for a server reset. resetType is the 1-byte
// resetType sub-function, e.g. uds.HardReset.
func (b *Builder) ECUReset(resetType int) string {
	return join(sidTok(uds.ER), b.byteTok(uds.ER, "resetType", resetType))
}

// SecurityAccess encodes a seed request or key submission for a security
// level. accessType is the 1-byte securityAccessType sub-function; odd values
// request a seed, even values send the corresponding key. The optional
// dataRecord carries seed-request parameters or the key bytes.
func (b *Builder) SecurityAccess(accessType int, dataRecord ...int) string {
	return join(sidTok(uds.SA), b.byteTok(uds.SA, "securityAccessType", accessType), hexenc.List(dataRecord))
}

// CommunicationControl encodes a request to switch transmission or reception
// of certain message groups on or off. controlType and communicationType are
// 1-byte parameters per ISO 14229-1.
func (b *Builder) CommunicationControl(controlType, communicationType int) string {
	return join(
		sidTok(uds.CC),
		b.byteTok(uds.CC, "controlType", controlType),
		b.byteTok(uds.CC, "communicationType", communicationType),
	)
}

// CommunicationControlWithNodeID is the CommunicationControl form carrying
// the 2-byte nodeIdentificationNumber used by the enhanced-address-information
// control types; the node id is encoded high byte then low byte.
func (b *Builder) CommunicationControlWithNodeID(controlType, communicationType, nodeIdentificationNumber int) string {
	return join(
		sidTok(uds.CC),
		b.byteTok(uds.CC, "controlType", controlType),
		b.byteTok(uds.CC, "communicationType", communicationType),
		b.wordTok(uds.CC, "nodeIdentificationNumber", nodeIdentificationNumber),
	)
}

// TesterPresent encodes the keep-alive request indicating the client is still
// connected. zeroSubFunction is normally uds.ZeroSubFunction, optionally with
// the suppressPosRspMsgIndication bit set.
func (b *Builder) TesterPresent(zeroSubFunction int) string {
	return join(sidTok(uds.TP), b.byteTok(uds.TP, "zeroSubFunction", zeroSubFunction))
}

// AccessTimingParameter encodes a request to read or change the timing
// parameters of the communication link. The optional requestRecord carries
// the timing parameter values to be set.
func (b *Builder) AccessTimingParameter(accessType int, requestRecord ...int) string {
	return join(sidTok(uds.ATP), b.byteTok(uds.ATP, "timingParameterAccessType", accessType), hexenc.List(requestRecord))
}

// SecuredDataTransmission encodes a request carrying data protected by the
// security sub-layer.
func (b *Builder) SecuredDataTransmission(securityDataRequestRecord []int) string {
	return join(sidTok(uds.SDT), hexenc.List(securityDataRequestRecord))
}

// ControlDTCSetting encodes a request to stop or resume the updating of DTC
// status bits in the server. settingType is uds.On or uds.Off; the optional
// optionRecord carries additional control data.
func (b *Builder) ControlDTCSetting(settingType int, optionRecord ...int) string {
	return join(sidTok(uds.CDTCS), b.byteTok(uds.CDTCS, "dtcSettingType", settingType), hexenc.List(optionRecord))
}

// ResponseOnEvent encodes a request to start or stop transmission of
// responses on a specified event. eventTypeRecord and
// serviceToRespondToRecord are both optional; pass nil to omit either. When
// both are present the event type record precedes the service record, per
// the standard's byte layout.
func (b *Builder) ResponseOnEvent(eventType, eventWindowTime int, eventTypeRecord, serviceToRespondToRecord []int) string {
	return join(
		sidTok(uds.ROE),
		b.byteTok(uds.ROE, "eventType", eventType),
		b.byteTok(uds.ROE, "eventWindowTime", eventWindowTime),
		hexenc.List(eventTypeRecord),
		hexenc.List(serviceToRespondToRecord),
	)
}

// LinkControl encodes a bare link control request, used with control types
// that carry no parameter, e.g. uds.TransitionMode.
func (b *Builder) LinkControl(linkControlType int) string {
	return join(sidTok(uds.LC), b.byteTok(uds.LC, "linkControlType", linkControlType))
}

// LinkControlWithModeIdentifier is the LinkControl form carrying the 1-byte
// fixed linkControlModeIdentifier, used with
// uds.VerifyModeTransitionWithFixedParameter.
func (b *Builder) LinkControlWithModeIdentifier(linkControlType, modeIdentifier int) string {
	return join(
		sidTok(uds.LC),
		b.byteTok(uds.LC, "linkControlType", linkControlType),
		b.byteTok(uds.LC, "linkControlModeIdentifier", modeIdentifier),
	)
}

// LinkControlWithRecord is the LinkControl form carrying the 3-byte specific
// linkRecord, used with uds.VerifyModeTransitionWithSpecificParameter. The
// record is encoded most significant byte first.
func (b *Builder) LinkControlWithRecord(linkControlType, linkRecord int) string {
	if b.strict && linkRecord != linkRecord&0xFFFFFF {
		b.logger.Warn("value truncated to three bytes",
			"service", uds.LC.String(), "field", "linkRecord", "value", linkRecord)
	}
	return join(
		sidTok(uds.LC),
		b.byteTok(uds.LC, "linkControlType", linkControlType),
		hexenc.Fixed(linkRecord, 3),
	)
}
