package catalog

import "github.com/aeroset/aeroset-go/pkg/setting"

// Capabilities gating settings registration. These mirror the optional
// hardware and firmware features of the target; settings requiring a
// capability outside the enabled set are simply not registered.
const (
	CapMag       setting.Capability = "mag"
	CapBaro      setting.Capability = "baro"
	CapGPS       setting.Capability = "gps"
	CapBlackbox  setting.Capability = "blackbox"
	CapTelemetry setting.Capability = "telemetry"
	CapOSD       setting.Capability = "osd"
	CapSerialRX  setting.Capability = "serialrx"
	CapSpektrum  setting.Capability = "spektrum"
	CapRxSPI     setting.Capability = "rx_spi"
	CapDualGyro  setting.Capability = "dual_gyro"
	CapGyro32k   setting.Capability = "gyro_32khz"
)

// AllCapabilities returns every known capability.
func AllCapabilities() []setting.Capability {
	return []setting.Capability{
		CapMag, CapBaro, CapGPS, CapBlackbox, CapTelemetry, CapOSD,
		CapSerialRX, CapSpektrum, CapRxSPI, CapDualGyro, CapGyro32k,
	}
}

// DefaultCapabilities returns the capability set of a typical full
// build: everything except the board-specific gyro options.
func DefaultCapabilities() []setting.Capability {
	return []setting.Capability{
		CapMag, CapBaro, CapGPS, CapBlackbox, CapTelemetry, CapOSD,
		CapSerialRX, CapSpektrum, CapRxSPI,
	}
}
