package uds

// Sub-function identifiers defined by ISO 14229-1, grouped by the service
// they belong to. Each identifier carries its full name and the short
// mnemonic from the standard's tables as aliases of one constant. Values
// repeat across groups; the grouping carries no validation.

// DiagnosticSessionControl session types.
const (
	DefaultSession                = 0x01
	ProgrammingSession            = 0x02
	ExtendedSession               = 0x03
	SafetySystemDiagnosticSession = 0x04

	DS    = DefaultSession
	PRGS  = ProgrammingSession
	EXTDS = ExtendedSession
	SSDS  = SafetySystemDiagnosticSession
)

// ECUReset reset types.
const (
	HardReset                 = 0x01
	KeyOnOffReset             = 0x02
	SoftReset                 = 0x03
	EnableRapidPowerShutdown  = 0x04
	DisableRapidPowerShutdown = 0x05

	HR      = HardReset
	KOFFONR = KeyOnOffReset
	SR      = SoftReset
	ERPSD   = EnableRapidPowerShutdown
	DRPSD   = DisableRapidPowerShutdown
)

// SecurityAccess access types.
const (
	RequestSeed = 0x01
	SendKey     = 0x02

	RSD = RequestSeed
	SK  = SendKey
)

// CommunicationControl control types.
const (
	EnableRxAndTx                                      = 0x00
	EnableRxAndDisableTx                               = 0x01
	DisableRxAndEnableTx                               = 0x02
	DisableRxAndTx                                     = 0x03
	EnableRxAndDisableTxWithEnhancedAddressInformation = 0x04
	EnableRxAndTxWithEnhancedAddressInformation        = 0x05

	ERXTX      = EnableRxAndTx
	ERXDTX     = EnableRxAndDisableTx
	DRXETX     = DisableRxAndEnableTx
	DRXTX      = DisableRxAndTx
	ERXDTXWEAI = EnableRxAndDisableTxWithEnhancedAddressInformation
	ERXTXWEAI  = EnableRxAndTxWithEnhancedAddressInformation
)

// TesterPresent sub-functions.
const (
	ZeroSubFunction = 0x00

	ZSUBF = ZeroSubFunction
)

// AccessTimingParameter access types.
const (
	ReadExtendedTimingParameterSet      = 0x01
	SetTimingParametersToDefaultValues  = 0x02
	ReadCurrentlyActiveTimingParameters = 0x03
	SetTimingParametersToGivenValues    = 0x04

	RETPS  = ReadExtendedTimingParameterSet
	STPTDV = SetTimingParametersToDefaultValues
	RCATP  = ReadCurrentlyActiveTimingParameters
	STPTGV = SetTimingParametersToGivenValues
)

// ControlDTCSetting setting types.
const (
	On  = 0x01
	Off = 0x02

	ON  = On
	OFF = Off
)

// ResponseOnEvent event types and storage states.
const (
	DoNotStoreEvent          = 0x00
	StoreEvent               = 0x01
	StopResponseOnEvent      = 0x00
	OnDTCStatusChange        = 0x01
	OnTimerInterrupt         = 0x02
	OnChangeOfDataIdentifier = 0x03
	ReportActivatedEvents    = 0x04
	StartResponseOnEvent     = 0x05
	ClearResponseOnEvent     = 0x06
	OnComparisonOfValue      = 0x07

	DNSE    = DoNotStoreEvent
	SE      = StoreEvent
	STPROE  = StopResponseOnEvent
	ONDTCS  = OnDTCStatusChange
	OTI     = OnTimerInterrupt
	OCODID  = OnChangeOfDataIdentifier
	RAE     = ReportActivatedEvents
	STRTROE = StartResponseOnEvent
	CLRROE  = ClearResponseOnEvent
	OCOV    = OnComparisonOfValue
)

// LinkControl link control types.
const (
	VerifyModeTransitionWithFixedParameter    = 0x01
	VerifyModeTransitionWithSpecificParameter = 0x02
	TransitionMode                            = 0x03

	VMTWFP = VerifyModeTransitionWithFixedParameter
	VMTWSP = VerifyModeTransitionWithSpecificParameter
	TM     = TransitionMode
)

// DynamicallyDefineDataIdentifier definition types.
const (
	DefineByIdentifier                    = 0x01
	DefineByMemoryAddress                 = 0x02
	ClearDynamicallyDefinedDataIdentifier = 0x03

	DBID   = DefineByIdentifier
	DBMA   = DefineByMemoryAddress
	CDDDID = ClearDynamicallyDefinedDataIdentifier
)

// ReadDTCInformation report types.
const (
	ReportNumberOfDTCByStatusMask                   = 0x01
	ReportDTCByStatusMask                           = 0x02
	ReportDTCSnapshotIdentification                 = 0x03
	ReportDTCSnapshotRecordByDTCNumber              = 0x04
	ReadDTCStoredDataByRecordNumber                 = 0x05
	ReportDTCExtDataRecordByDTCNumber               = 0x06
	ReportNumberOfDTCBySeverityMaskRecord           = 0x07
	ReportDTCBySeverityMaskRecord                   = 0x08
	ReportSeverityInformationOfDTC                  = 0x09
	ReportSupportedDTC                              = 0x0A
	ReportFirstTestFailedDTC                        = 0x0B
	ReportFirstConfirmedDTC                         = 0x0C
	ReportMostRecentTestFailedDTC                   = 0x0D
	ReportMostRecentConfirmedDTC                    = 0x0E
	ReportMirrorMemoryDTCByStatusMask               = 0x0F
	ReportMirrorMemoryDTCExtDataRecordByDTCNumber   = 0x10
	ReportNumberOfMirrorMemoryDTCByStatusMask       = 0x11
	ReportNumberOfEmissionOBDDTCByStatusMask        = 0x12
	ReportEmissionOBDDTCByStatusMask                = 0x13
	ReportDTCFaultDetectionCounter                  = 0x14
	ReportDTCWithPermanentStatus                    = 0x15
	ReportDTCExtDataRecordByRecordNumber            = 0x16
	ReportUserDefMemoryDTCByStatusMask              = 0x17
	ReportUserDefMemoryDTCSnapshotRecordByDTCNumber = 0x18
	ReportUserDefMemoryDTCExtDataRecordByDTCNumber  = 0x19
	ReportWWHOBDDTCByMaskRecord                     = 0x42
	ReportWWHOBDDTCWithPermanentStatus              = 0x55

	RNODTCBSM     = ReportNumberOfDTCByStatusMask
	RDTCBSM       = ReportDTCByStatusMask
	RDTCSSI       = ReportDTCSnapshotIdentification
	RDTCSSBDTC    = ReportDTCSnapshotRecordByDTCNumber
	RDTCSDBRN     = ReadDTCStoredDataByRecordNumber
	RDTCEDRBDN    = ReportDTCExtDataRecordByDTCNumber
	RNODTCBSMR    = ReportNumberOfDTCBySeverityMaskRecord
	RDTCBSMR      = ReportDTCBySeverityMaskRecord
	RSIODTC       = ReportSeverityInformationOfDTC
	RSUPDTC       = ReportSupportedDTC
	RFTFDTC       = ReportFirstTestFailedDTC
	RFCDTC        = ReportFirstConfirmedDTC
	RMRTFDTC      = ReportMostRecentTestFailedDTC
	RMRCDTC       = ReportMostRecentConfirmedDTC
	RMMDTCBSM     = ReportMirrorMemoryDTCByStatusMask
	RMDEDRBDN     = ReportMirrorMemoryDTCExtDataRecordByDTCNumber
	RNOMMDTCBSM   = ReportNumberOfMirrorMemoryDTCByStatusMask
	RNOOEBDDTCBSM = ReportNumberOfEmissionOBDDTCByStatusMask
	ROBDDTCBSM    = ReportEmissionOBDDTCByStatusMask
	RDTCFDC       = ReportDTCFaultDetectionCounter
	RDTCWPS       = ReportDTCWithPermanentStatus
	RDTCEDRBR     = ReportDTCExtDataRecordByRecordNumber
	RUDMDTCBSM    = ReportUserDefMemoryDTCByStatusMask
	RUDMDTCSSBDTC = ReportUserDefMemoryDTCSnapshotRecordByDTCNumber
	RUDMDTCEDRBDN = ReportUserDefMemoryDTCExtDataRecordByDTCNumber
	ROBDDTCBMR    = ReportWWHOBDDTCByMaskRecord
	RWWHOBDDTCWPS = ReportWWHOBDDTCWithPermanentStatus
)

// RoutineControl routine control types.
const (
	StartRoutine         = 0x01
	StopRoutine          = 0x02
	RequestRoutineResult = 0x03

	STR  = StartRoutine
	STPR = StopRoutine
	RRR  = RequestRoutineResult
)
