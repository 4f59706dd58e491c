package catalog

import "github.com/aeroset/aeroset-go/pkg/enumtab"

// Enumeration table IDs. tableCount is the declared size of the ID
// space; New verifies the registered table list matches it, so adding
// an ID here without adding the table below (or vice versa) fails at
// startup instead of at first use.
const (
	TableOffOn enumtab.ID = iota
	TableUnit
	TableAlignment
	TableGPSProvider
	TableGPSSBASMode
	TableBlackboxDevice
	TableCurrentSensor
	TableBatterySensor
	TableSerialRX
	TableRxSpi
	TableGyroLpf
	TableAccHardware
	TableBaroHardware
	TableMagHardware
	TableDebug
	TablePwmProtocol
	TableRcInterpolation
	TableRcInterpolationChannels
	TableLowpassType
	TableFailsafeProcedure
	TableCrashRecovery

	tableCount
)

// enumTables lists every table in ID order. The full set is always
// registered regardless of the enabled capability set, keeping the
// type model uniform across configurations.
func enumTables() []*enumtab.Table {
	return []*enumtab.Table{
		enumtab.MustTable(TableOffOn, "off_on", "OFF", "ON"),
		enumtab.MustTable(TableUnit, "unit", "IMPERIAL", "METRIC"),
		enumtab.MustTable(TableAlignment, "alignment",
			"DEFAULT", "CW0", "CW90", "CW180", "CW270",
			"CW0FLIP", "CW90FLIP", "CW180FLIP", "CW270FLIP"),
		enumtab.MustTable(TableGPSProvider, "gps_provider", "NMEA", "UBLOX"),
		enumtab.MustTable(TableGPSSBASMode, "gps_sbas_mode",
			"AUTO", "EGNOS", "WAAS", "MSAS", "GAGAN"),
		enumtab.MustTable(TableBlackboxDevice, "blackbox_device",
			"NONE", "SPIFLASH", "SDCARD", "SERIAL"),
		enumtab.MustTable(TableCurrentSensor, "current_sensor",
			"NONE", "ADC", "VIRTUAL", "ESC"),
		enumtab.MustTable(TableBatterySensor, "battery_sensor",
			"NONE", "ADC", "ESC"),
		enumtab.MustTable(TableSerialRX, "serial_rx",
			"SPEK1024", "SPEK2048", "SBUS", "SUMD", "SUMH",
			"XB-B", "XB-B-RJ01", "IBUS", "JETIEXBUS", "CRSF", "SRXL"),
		enumtab.MustTable(TableRxSpi, "rx_spi",
			"V202_250K", "V202_1M", "SYMA_X", "SYMA_X5C",
			"CX10", "CX10A", "H8_3D", "INAV"),
		enumtab.MustTable(TableGyroLpf, "gyro_lpf",
			"OFF", "188HZ", "98HZ", "42HZ", "20HZ", "10HZ", "5HZ", "EXPERIMENTAL"),
		enumtab.MustTable(TableAccHardware, "acc_hardware",
			"AUTO", "NONE", "ADXL345", "MPU6050", "MMA8452", "BMA280",
			"LSM303DLHC", "MPU6000", "MPU6500", "MPU9250", "ICM20601",
			"ICM20602", "ICM20608", "ICM20689", "BMI160", "FAKE"),
		enumtab.MustTable(TableBaroHardware, "baro_hardware",
			"AUTO", "NONE", "BMP085", "MS5611", "BMP280"),
		enumtab.MustTable(TableMagHardware, "mag_hardware",
			"AUTO", "NONE", "HMC5883", "AK8975", "AK8963"),
		enumtab.MustTable(TableDebug, "debug",
			"NONE", "CYCLETIME", "BATTERY", "GYRO", "ACCELEROMETER",
			"MIXER", "AIRMODE", "PIDLOOP", "NOTCH", "RC_INTERPOLATION",
			"VELOCITY", "DFILTER", "ANGLERATE", "ESC_SENSOR", "SCHEDULER",
			"STACK", "ESC_SENSOR_RPM", "ESC_SENSOR_TMP", "ALTITUDE"),
		enumtab.MustTable(TablePwmProtocol, "pwm_protocol",
			"OFF", "ONESHOT125", "ONESHOT42", "MULTISHOT", "BRUSHED",
			"DSHOT150", "DSHOT300", "DSHOT600", "DSHOT1200"),
		enumtab.MustTable(TableRcInterpolation, "rc_interpolation",
			"OFF", "PRESET", "AUTO", "MANUAL"),
		enumtab.MustTable(TableRcInterpolationChannels, "rc_interpolation_channels",
			"RP", "RPY", "RPYT"),
		enumtab.MustTable(TableLowpassType, "lowpass_type",
			"PT1", "BIQUAD", "FIR"),
		enumtab.MustTable(TableFailsafeProcedure, "failsafe_procedure",
			"AUTO-LAND", "DROP"),
		enumtab.MustTable(TableCrashRecovery, "crash_recovery",
			"OFF", "ON", "BEEP"),
	}
}
