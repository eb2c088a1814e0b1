package uds

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// didNames maps data identifiers to display names. ISO 14229-1 reserves the
// 0xF180-0xF19F range for identification data; vendor-specific identifiers
// can be registered at runtime from any goroutine.
var didNames = xsync.NewMapOf[uint16, string]()

func init() {
	standard := map[uint16]string{
		0xF180: "BootSoftwareIdentification",
		0xF181: "ApplicationSoftwareIdentification",
		0xF182: "ApplicationDataIdentification",
		0xF183: "BootSoftwareFingerprint",
		0xF184: "ApplicationSoftwareFingerprint",
		0xF185: "ApplicationDataFingerprint",
		0xF186: "ActiveDiagnosticSession",
		0xF187: "VehicleManufacturerSparePartNumber",
		0xF188: "VehicleManufacturerECUSoftwareNumber",
		0xF189: "VehicleManufacturerECUSoftwareVersionNumber",
		0xF18A: "SystemSupplierIdentifier",
		0xF18B: "ECUManufacturingDate",
		0xF18C: "ECUSerialNumber",
		0xF18E: "VehicleManufacturerKitAssemblyPartNumber",
		0xF190: "VIN",
		0xF191: "VehicleManufacturerECUHardwareNumber",
		0xF192: "SystemSupplierECUHardwareNumber",
		0xF193: "SystemSupplierECUHardwareVersionNumber",
		0xF194: "SystemSupplierECUSoftwareNumber",
		0xF195: "SystemSupplierECUSoftwareVersionNumber",
		0xF196: "ExhaustRegulationOrTypeApprovalNumber",
		0xF197: "SystemNameOrEngineType",
		0xF198: "RepairShopCodeOrTesterSerialNumber",
		0xF199: "ProgrammingDate",
		0xF19D: "ECUInstallationDate",
		0xF19E: "ODXFile",
	}
	for did, name := range standard {
		didNames.Store(did, name)
	}
}

// RegisterDataIdentifierName registers a display name for a data identifier,
// replacing any existing entry. Safe for concurrent use.
func RegisterDataIdentifierName(did uint16, name string) {
	didNames.Store(did, name)
}

// DataIdentifierName returns the registered display name for a data
// identifier. The second return value reports whether the identifier is known.
func DataIdentifierName(did uint16) (string, bool) {
	return didNames.Load(did)
}

// DataIdentifierEntries calls fn for each registered data identifier until fn
// returns false. Iteration order is unspecified.
func DataIdentifierEntries(fn func(did uint16, name string) bool) {
	didNames.Range(fn)
}
