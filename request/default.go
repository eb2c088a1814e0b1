package request

// Package-level functions encode through a shared default Builder wired to
// the package default logger, for callers that don't need a configured
// Builder.

var defBuilder = New()

func DiagnosticSessionControl(sessionType int) string {
	return defBuilder.DiagnosticSessionControl(sessionType)
}

func ECUReset(resetType int) string {
	return defBuilder.ECUReset(resetType)
}

func SecurityAccess(accessType int, dataRecord ...int) string {
	return defBuilder.SecurityAccess(accessType, dataRecord...)
}

func CommunicationControl(controlType, communicationType int) string {
	return defBuilder.CommunicationControl(controlType, communicationType)
}

func CommunicationControlWithNodeID(controlType, communicationType, nodeIdentificationNumber int) string {
	return defBuilder.CommunicationControlWithNodeID(controlType, communicationType, nodeIdentificationNumber)
}

func TesterPresent(zeroSubFunction int) string {
	return defBuilder.TesterPresent(zeroSubFunction)
}

func AccessTimingParameter(accessType int, requestRecord ...int) string {
	return defBuilder.AccessTimingParameter(accessType, requestRecord...)
}

func SecuredDataTransmission(securityDataRequestRecord []int) string {
	return defBuilder.SecuredDataTransmission(securityDataRequestRecord)
}

func ControlDTCSetting(settingType int, optionRecord ...int) string {
	return defBuilder.ControlDTCSetting(settingType, optionRecord...)
}

func ResponseOnEvent(eventType, eventWindowTime int, eventTypeRecord, serviceToRespondToRecord []int) string {
	return defBuilder.ResponseOnEvent(eventType, eventWindowTime, eventTypeRecord, serviceToRespondToRecord)
}

func LinkControl(linkControlType int) string {
	return defBuilder.LinkControl(linkControlType)
}

func LinkControlWithModeIdentifier(linkControlType, modeIdentifier int) string {
	return defBuilder.LinkControlWithModeIdentifier(linkControlType, modeIdentifier)
}

func LinkControlWithRecord(linkControlType, linkRecord int) string {
	return defBuilder.LinkControlWithRecord(linkControlType, linkRecord)
}

func ReadDataByIdentifier(dataIdentifiers ...int) string {
	return defBuilder.ReadDataByIdentifier(dataIdentifiers...)
}

func ReadMemoryByAddress(formatIdentifier, memoryAddress, memorySize int) string {
	return defBuilder.ReadMemoryByAddress(formatIdentifier, memoryAddress, memorySize)
}

func ReadScalingDataByIdentifier(dataIdentifier int) string {
	return defBuilder.ReadScalingDataByIdentifier(dataIdentifier)
}

func ReadDataByPeriodicIdentifier(transmissionMode int, periodicDataIdentifiers ...int) string {
	return defBuilder.ReadDataByPeriodicIdentifier(transmissionMode, periodicDataIdentifiers...)
}

func DynamicallyDefineDataIdentifier(def DataIdentifierDefinition) string {
	return defBuilder.DynamicallyDefineDataIdentifier(def)
}

func DefineDataIdentifierByIdentifier(sources ...IdentifierSource) string {
	return defBuilder.DefineDataIdentifierByIdentifier(sources...)
}

func DefineDataIdentifierByMemoryAddress(sources ...MemorySource) string {
	return defBuilder.DefineDataIdentifierByMemoryAddress(sources...)
}

func ClearDynamicallyDefinedDataIdentifier(dataIdentifier int) string {
	return defBuilder.ClearDynamicallyDefinedDataIdentifier(dataIdentifier)
}

func WriteDataByIdentifier(dataIdentifier int, dataRecord []int) string {
	return defBuilder.WriteDataByIdentifier(dataIdentifier, dataRecord)
}

func WriteMemoryByAddress(formatIdentifier, memoryAddress, memorySize int, dataRecord []int) string {
	return defBuilder.WriteMemoryByAddress(formatIdentifier, memoryAddress, memorySize, dataRecord)
}

func ClearDiagnosticInformation(groupOfDTC int) string {
	return defBuilder.ClearDiagnosticInformation(groupOfDTC)
}

func ReadDTCInformation(reportType int, arguments ...int) string {
	return defBuilder.ReadDTCInformation(reportType, arguments...)
}

func InputOutputControlByIdentifier(dataIdentifier int, controlOptionRecord []int, controlEnableMaskRecord ...int) string {
	return defBuilder.InputOutputControlByIdentifier(dataIdentifier, controlOptionRecord, controlEnableMaskRecord...)
}

func RoutineControl(controlType, routineIdentifier int, optionRecord ...int) string {
	return defBuilder.RoutineControl(controlType, routineIdentifier, optionRecord...)
}

func RequestDownload(dataFormatIdentifier, formatIdentifier, memoryAddress, memorySize int) string {
	return defBuilder.RequestDownload(dataFormatIdentifier, formatIdentifier, memoryAddress, memorySize)
}

func RequestUpload(dataFormatIdentifier, formatIdentifier, memoryAddress, memorySize int) string {
	return defBuilder.RequestUpload(dataFormatIdentifier, formatIdentifier, memoryAddress, memorySize)
}

func TransferData(blockSequenceCounter int, parameterRecord ...int) string {
	return defBuilder.TransferData(blockSequenceCounter, parameterRecord...)
}

func RequestTransferExit(parameterRecord ...int) string {
	return defBuilder.RequestTransferExit(parameterRecord...)
}

func RequestFileTransfer(modeOfOperation, filePathAndNameLength int, filePathAndName []int) string {
	return defBuilder.RequestFileTransfer(modeOfOperation, filePathAndNameLength, filePathAndName)
}

func RequestFileTransferWithSizes(
	modeOfOperation, filePathAndNameLength int, filePathAndName []int,
	dataFormatIdentifier, fileSizeParameterLength int,
	fileSizeUncompressed, fileSizeCompressed []int,
) string {
	return defBuilder.RequestFileTransferWithSizes(
		modeOfOperation, filePathAndNameLength, filePathAndName,
		dataFormatIdentifier, fileSizeParameterLength,
		fileSizeUncompressed, fileSizeCompressed,
	)
}
