package catalog

import "github.com/aeroset/aeroset-go/pkg/setting"

// Defs returns the full settings declaration table in declaration
// order. Every row is always representable; the capability set chosen
// at construction decides which rows are registered.
func Defs() []setting.Def {
	u8 := setting.TypeUint8
	i8 := setting.TypeInt8
	u16 := setting.TypeUint16
	i16 := setting.TypeInt16
	rng := setting.Range
	enum := setting.Enum

	return []setting.Def{
		// gyro
		{Name: "align_gyro", Type: u8, Constraint: enum(TableAlignment), Group: GroupGyro, Offset: offGyroAlign},
		{Name: "gyro_lpf", Type: u8, Constraint: enum(TableGyroLpf), Group: GroupGyro, Offset: offGyroLpf},
		{Name: "gyro_sync_denom", Type: u8, Constraint: rng(1, 32), Group: GroupGyro, Offset: offGyroSyncDenom, Default: 1},
		{Name: "gyro_lowpass_type", Type: u8, Constraint: enum(TableLowpassType), Group: GroupGyro, Offset: offGyroLowpassType},
		{Name: "gyro_lowpass_hz", Type: u8, Constraint: rng(0, 255), Group: GroupGyro, Offset: offGyroLowpassHz, Default: 90},
		{Name: "moron_threshold", Type: u8, Constraint: rng(0, 200), Group: GroupGyro, Offset: offGyroMoronThresh, Default: 48},
		{Name: "gyro_use_32khz", Type: u8, Constraint: enum(TableOffOn), Group: GroupGyro, Offset: offGyroUse32k, Requires: []setting.Capability{CapGyro32k}},
		{Name: "gyro_to_use", Type: u8, Constraint: rng(0, 1), Group: GroupGyro, Offset: offGyroToUse, Requires: []setting.Capability{CapDualGyro}},
		{Name: "gyro_notch1_hz", Type: u16, Constraint: rng(0, 16000), Group: GroupGyro, Offset: offGyroNotch1Hz, Default: 400},
		{Name: "gyro_notch1_cutoff", Type: u16, Constraint: rng(1, 16000), Group: GroupGyro, Offset: offGyroNotch1Cutoff, Default: 300},
		{Name: "gyro_notch2_hz", Type: u16, Constraint: rng(0, 16000), Group: GroupGyro, Offset: offGyroNotch2Hz, Default: 200},
		{Name: "gyro_notch2_cutoff", Type: u16, Constraint: rng(1, 16000), Group: GroupGyro, Offset: offGyroNotch2Cutoff, Default: 100},

		// accelerometer
		{Name: "align_acc", Type: u8, Constraint: enum(TableAlignment), Group: GroupAcc, Offset: offAccAlign},
		{Name: "acc_hardware", Type: u8, Constraint: enum(TableAccHardware), Group: GroupAcc, Offset: offAccHardware},
		{Name: "acc_lpf_hz", Type: u16, Constraint: rng(0, 400), Group: GroupAcc, Offset: offAccLpfHz, Default: 10},
		{Name: "acc_trim_pitch", Type: i16, Constraint: rng(-300, 300), Group: GroupAcc, Offset: offAccTrimPitch},
		{Name: "acc_trim_roll", Type: i16, Constraint: rng(-300, 300), Group: GroupAcc, Offset: offAccTrimRoll},

		// compass
		{Name: "align_mag", Type: u8, Constraint: enum(TableAlignment), Group: GroupCompass, Offset: offMagAlign, Requires: []setting.Capability{CapMag}},
		{Name: "mag_hardware", Type: u8, Constraint: enum(TableMagHardware), Group: GroupCompass, Offset: offMagHardware, Requires: []setting.Capability{CapMag}},
		{Name: "mag_declination", Type: i16, Constraint: rng(-18000, 18000), Group: GroupCompass, Offset: offMagDeclination, Requires: []setting.Capability{CapMag}},

		// barometer
		{Name: "baro_hardware", Type: u8, Constraint: enum(TableBaroHardware), Group: GroupBaro, Offset: offBaroHardware, Requires: []setting.Capability{CapBaro}},
		{Name: "baro_tab_size", Type: u8, Constraint: rng(1, 48), Group: GroupBaro, Offset: offBaroSampleCount, Default: 21, Requires: []setting.Capability{CapBaro}},
		{Name: "baro_noise_lpf", Type: u16, Constraint: rng(0, 1000), Group: GroupBaro, Offset: offBaroNoiseLpf, Default: 600, Requires: []setting.Capability{CapBaro}},
		{Name: "baro_cf_vel", Type: u16, Constraint: rng(0, 1000), Group: GroupBaro, Offset: offBaroCfVel, Default: 985, Requires: []setting.Capability{CapBaro}},
		{Name: "baro_cf_alt", Type: u16, Constraint: rng(0, 1000), Group: GroupBaro, Offset: offBaroCfAlt, Default: 965, Requires: []setting.Capability{CapBaro}},

		// battery
		{Name: "bat_capacity", Type: u16, Constraint: rng(0, 20000), Group: GroupBattery, Offset: offBatCapacity},
		{Name: "vbat_max_cell_voltage", Type: u8, Constraint: rng(10, 50), Group: GroupBattery, Offset: offVbatMaxCell, Default: 43},
		{Name: "vbat_full_cell_voltage", Type: u8, Constraint: rng(10, 50), Group: GroupBattery, Offset: offVbatFullCell, Default: 41},
		{Name: "vbat_min_cell_voltage", Type: u8, Constraint: rng(10, 50), Group: GroupBattery, Offset: offVbatMinCell, Default: 33},
		{Name: "vbat_warning_cell_voltage", Type: u8, Constraint: rng(10, 50), Group: GroupBattery, Offset: offVbatWarningCell, Default: 35},
		{Name: "vbat_hysteresis", Type: u8, Constraint: rng(0, 250), Group: GroupBattery, Offset: offVbatHysteresis, Default: 1},
		{Name: "current_meter", Type: u8, Constraint: enum(TableCurrentSensor), Group: GroupBattery, Offset: offCurrentMeterType, Default: 1},
		{Name: "battery_meter", Type: u8, Constraint: enum(TableBatterySensor), Group: GroupBattery, Offset: offBatteryMeterType, Default: 1},
		{Name: "use_vbat_alerts", Type: u8, Constraint: enum(TableOffOn), Group: GroupBattery, Offset: offUseVbatAlerts, Default: 1},
		{Name: "use_consumption_alerts", Type: u8, Constraint: enum(TableOffOn), Group: GroupBattery, Offset: offUseConsumpAlerts},
		{Name: "consumption_warning_percentage", Type: u8, Constraint: rng(0, 100), Group: GroupBattery, Offset: offConsumpWarningPct, Default: 10},
		{Name: "ibata_scale", Type: i16, Constraint: rng(-16000, 16000), Group: GroupBattery, Offset: offIbatScale, Default: 400},
		{Name: "ibata_offset", Type: i16, Constraint: rng(-16000, 16000), Group: GroupBattery, Offset: offIbatOffset},

		// receiver
		{Name: "mid_rc", Type: u16, Constraint: rng(1200, 1700), Group: GroupRx, Offset: offMidRc, Default: 1500},
		{Name: "min_check", Type: u16, Constraint: rng(750, 2250), Group: GroupRx, Offset: offMinCheck, Default: 1100},
		{Name: "max_check", Type: u16, Constraint: rng(750, 2250), Group: GroupRx, Offset: offMaxCheck, Default: 1900},
		{Name: "rssi_channel", Type: i8, Constraint: rng(0, 18), Group: GroupRx, Offset: offRssiChannel},
		{Name: "rssi_scale", Type: u8, Constraint: rng(1, 255), Group: GroupRx, Offset: offRssiScale, Default: 100},
		{Name: "rssi_invert", Type: u8, Constraint: enum(TableOffOn), Group: GroupRx, Offset: offRssiInvert},
		{Name: "rc_interpolation", Type: u8, Constraint: enum(TableRcInterpolation), Group: GroupRx, Offset: offRcInterp, Default: 2},
		{Name: "rc_interpolation_channels", Type: u8, Constraint: enum(TableRcInterpolationChannels), Group: GroupRx, Offset: offRcInterpCh},
		{Name: "rc_interpolation_interval", Type: u8, Constraint: rng(1, 50), Group: GroupRx, Offset: offRcInterpInt, Default: 19},
		{Name: "fpv_mix_degrees", Type: u8, Constraint: rng(0, 50), Group: GroupRx, Offset: offFpvMixDegrees},
		{Name: "serialrx_provider", Type: u8, Constraint: enum(TableSerialRX), Group: GroupRx, Offset: offSerialRxProvider, Default: 2, Requires: []setting.Capability{CapSerialRX}},
		{Name: "serialrx_inverted", Type: u8, Constraint: enum(TableOffOn), Group: GroupRx, Offset: offSerialRxInverted, Requires: []setting.Capability{CapSerialRX}},
		{Name: "spektrum_sat_bind", Type: u8, Constraint: rng(0, 10), Group: GroupRx, Offset: offSpektrumSatBind, Requires: []setting.Capability{CapSpektrum}},
		{Name: "rx_min_usec", Type: u16, Constraint: rng(885, 2115), Group: GroupRx, Offset: offRxMinUsec, Default: 885},
		{Name: "rx_max_usec", Type: u16, Constraint: rng(885, 2115), Group: GroupRx, Offset: offRxMaxUsec, Default: 2115},
		{Name: "rx_spi_protocol", Type: u8, Constraint: enum(TableRxSpi), Group: GroupRx, Offset: offRxSpiProtocol, Requires: []setting.Capability{CapRxSPI}},

		// motor
		{Name: "min_throttle", Type: u16, Constraint: rng(750, 2250), Group: GroupMotor, Offset: offMinThrottle, Default: 1070},
		{Name: "max_throttle", Type: u16, Constraint: rng(750, 2250), Group: GroupMotor, Offset: offMaxThrottle, Default: 2000},
		{Name: "min_command", Type: u16, Constraint: rng(750, 2250), Group: GroupMotor, Offset: offMinCommand, Default: 1000},
		{Name: "motor_pwm_rate", Type: u16, Constraint: rng(200, 32000), Group: GroupMotor, Offset: offMotorPwmRate, Default: 480},
		{Name: "motor_pwm_protocol", Type: u8, Constraint: enum(TablePwmProtocol), Group: GroupMotor, Offset: offMotorPwmProtocol, Default: 1},
		{Name: "use_unsynced_pwm", Type: u8, Constraint: enum(TableOffOn), Group: GroupMotor, Offset: offUseUnsyncedPwm},
		{Name: "yaw_motors_reversed", Type: u8, Constraint: enum(TableOffOn), Group: GroupMotor, Offset: offYawMotorsReversed},

		// failsafe
		{Name: "failsafe_delay", Type: u8, Constraint: rng(0, 200), Group: GroupFailsafe, Offset: offFailsafeDelay, Default: 4},
		{Name: "failsafe_off_delay", Type: u8, Constraint: rng(0, 200), Group: GroupFailsafe, Offset: offFailsafeOffDelay, Default: 10},
		{Name: "failsafe_throttle", Type: u16, Constraint: rng(750, 2250), Group: GroupFailsafe, Offset: offFailsafeThrottle, Default: 1000},
		{Name: "failsafe_kill_switch", Type: u8, Constraint: enum(TableOffOn), Group: GroupFailsafe, Offset: offFailsafeKillSwitch},
		{Name: "failsafe_procedure", Type: u8, Constraint: enum(TableFailsafeProcedure), Group: GroupFailsafe, Offset: offFailsafeProcedure},
		{Name: "failsafe_throttle_low_delay", Type: u16, Constraint: rng(0, 300), Group: GroupFailsafe, Offset: offFailsafeThrLowDelay, Default: 100},

		// board alignment
		{Name: "align_board_roll", Type: i16, Constraint: rng(-180, 360), Group: GroupBoardAlign, Offset: offAlignBoardRoll},
		{Name: "align_board_pitch", Type: i16, Constraint: rng(-180, 360), Group: GroupBoardAlign, Offset: offAlignBoardPitch},
		{Name: "align_board_yaw", Type: i16, Constraint: rng(-180, 360), Group: GroupBoardAlign, Offset: offAlignBoardYaw},

		// gps
		{Name: "gps_provider", Type: u8, Constraint: enum(TableGPSProvider), Group: GroupGPS, Offset: offGpsProvider, Default: 1, Requires: []setting.Capability{CapGPS}},
		{Name: "gps_sbas_mode", Type: u8, Constraint: enum(TableGPSSBASMode), Group: GroupGPS, Offset: offGpsSbasMode, Requires: []setting.Capability{CapGPS}},
		{Name: "gps_auto_config", Type: u8, Constraint: enum(TableOffOn), Group: GroupGPS, Offset: offGpsAutoConfig, Default: 1, Requires: []setting.Capability{CapGPS}},
		{Name: "gps_auto_baud", Type: u8, Constraint: enum(TableOffOn), Group: GroupGPS, Offset: offGpsAutoBaud, Requires: []setting.Capability{CapGPS}},

		// blackbox
		{Name: "blackbox_device", Type: u8, Constraint: enum(TableBlackboxDevice), Group: GroupBlackbox, Offset: offBlackboxDevice, Default: 1, Requires: []setting.Capability{CapBlackbox}},
		{Name: "blackbox_rate_num", Type: u8, Constraint: rng(1, 32), Group: GroupBlackbox, Offset: offBlackboxRateNum, Default: 1, Requires: []setting.Capability{CapBlackbox}},
		{Name: "blackbox_rate_denom", Type: u8, Constraint: rng(1, 32), Group: GroupBlackbox, Offset: offBlackboxRateDenom, Default: 1, Requires: []setting.Capability{CapBlackbox}},
		{Name: "blackbox_on_motor_test", Type: u8, Constraint: enum(TableOffOn), Group: GroupBlackbox, Offset: offBlackboxMotorTest, Requires: []setting.Capability{CapBlackbox}},

		// telemetry
		{Name: "tlm_switch", Type: u8, Constraint: enum(TableOffOn), Group: GroupTelemetry, Offset: offTlmSwitch, Requires: []setting.Capability{CapTelemetry}},
		{Name: "tlm_inverted", Type: u8, Constraint: enum(TableOffOn), Group: GroupTelemetry, Offset: offTlmInverted, Requires: []setting.Capability{CapTelemetry}},
		{Name: "frsky_unit", Type: u8, Constraint: enum(TableUnit), Group: GroupTelemetry, Offset: offFrskyUnit, Default: 1, Requires: []setting.Capability{CapTelemetry}},
		{Name: "frsky_vfas_precision", Type: u8, Constraint: rng(0, 1), Group: GroupTelemetry, Offset: offFrskyVfasPrec, Requires: []setting.Capability{CapTelemetry}},

		// osd
		{Name: "osd_units", Type: u8, Constraint: enum(TableUnit), Group: GroupOSD, Offset: offOsdUnits, Default: 1, Requires: []setting.Capability{CapOSD}},
		{Name: "osd_row_shiftdown", Type: u8, Constraint: rng(0, 1), Group: GroupOSD, Offset: offOsdRowShiftdown, Requires: []setting.Capability{CapOSD}},
		{Name: "osd_rssi_alarm", Type: u8, Constraint: rng(0, 100), Group: GroupOSD, Offset: offOsdRssiAlarm, Default: 20, Requires: []setting.Capability{CapOSD}},
		{Name: "osd_cap_alarm", Type: u16, Constraint: rng(0, 20000), Group: GroupOSD, Offset: offOsdCapAlarm, Default: 2200, Requires: []setting.Capability{CapOSD}},
		{Name: "osd_time_alarm", Type: u16, Constraint: rng(0, 60), Group: GroupOSD, Offset: offOsdTimeAlarm, Default: 10, Requires: []setting.Capability{CapOSD}},
		{Name: "osd_alt_alarm", Type: u16, Constraint: rng(0, 10000), Group: GroupOSD, Offset: offOsdAltAlarm, Default: 100, Requires: []setting.Capability{CapOSD}},

		// system
		{Name: "debug_mode", Type: u8, Constraint: enum(TableDebug), Group: GroupSystem, Offset: offDebugMode},
		{Name: "task_statistics", Type: u8, Constraint: enum(TableOffOn), Group: GroupSystem, Offset: offTaskStatistics, Default: 1},

		// pid profile
		{Name: "p_roll", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidPRoll, Default: 44},
		{Name: "i_roll", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidIRoll, Default: 40},
		{Name: "d_roll", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidDRoll, Default: 20},
		{Name: "p_pitch", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidPPitch, Default: 58},
		{Name: "i_pitch", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidIPitch, Default: 50},
		{Name: "d_pitch", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidDPitch, Default: 22},
		{Name: "p_yaw", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidPYaw, Default: 70},
		{Name: "i_yaw", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidIYaw, Default: 45},
		{Name: "d_yaw", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidDYaw, Default: 20},
		{Name: "p_level", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidPLevel, Default: 50},
		{Name: "i_level", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidILevel, Default: 50},
		{Name: "d_level", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidDLevel, Default: 75},
		{Name: "p_alt", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidPAlt, Default: 50},
		{Name: "i_alt", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidIAlt},
		{Name: "d_alt", Type: u8, Constraint: rng(0, 200), Group: GroupPidProfile, Offset: offPidDAlt},
		{Name: "dterm_lowpass_type", Type: u8, Constraint: enum(TableLowpassType), Group: GroupPidProfile, Offset: offDtermLowpassType, Default: 1},
		{Name: "dterm_lowpass", Type: u16, Constraint: rng(0, 16000), Group: GroupPidProfile, Offset: offDtermLowpass, Default: 100},
		{Name: "dterm_notch_hz", Type: u16, Constraint: rng(0, 16000), Group: GroupPidProfile, Offset: offDtermNotchHz, Default: 260},
		{Name: "dterm_notch_cutoff", Type: u16, Constraint: rng(1, 16000), Group: GroupPidProfile, Offset: offDtermNotchCutoff, Default: 160},
		{Name: "vbat_pid_gain", Type: u8, Constraint: enum(TableOffOn), Group: GroupPidProfile, Offset: offVbatPidGain},
		{Name: "pid_at_min_throttle", Type: u8, Constraint: enum(TableOffOn), Group: GroupPidProfile, Offset: offPidAtMinThrottle, Default: 1},
		{Name: "anti_gravity_threshold", Type: u16, Constraint: rng(20, 1000), Group: GroupPidProfile, Offset: offAntiGravityThresh, Default: 350},
		{Name: "anti_gravity_gain", Type: u16, Constraint: rng(1000, 30000), Group: GroupPidProfile, Offset: offAntiGravityGain, Default: 3500},
		{Name: "setpoint_relax_ratio", Type: u8, Constraint: rng(0, 100), Group: GroupPidProfile, Offset: offSetpointRelax, Default: 100},
		{Name: "dterm_setpoint_weight", Type: u8, Constraint: rng(0, 254), Group: GroupPidProfile, Offset: offDtermSetpointW, Default: 60},
		{Name: "yaw_accel_limit", Type: u16, Constraint: rng(0, 500), Group: GroupPidProfile, Offset: offYawAccelLimit, Default: 100},
		{Name: "accel_limit", Type: u16, Constraint: rng(0, 500), Group: GroupPidProfile, Offset: offAccelLimit},
		{Name: "crash_dthreshold", Type: u16, Constraint: rng(10, 2000), Group: GroupPidProfile, Offset: offCrashDThreshold, Default: 50},
		{Name: "crash_recovery", Type: u8, Constraint: enum(TableCrashRecovery), Group: GroupPidProfile, Offset: offCrashRecovery},
		{Name: "iterm_windup", Type: u8, Constraint: rng(30, 100), Group: GroupPidProfile, Offset: offItermWindup, Default: 50},
		{Name: "yaw_lowpass", Type: u16, Constraint: rng(0, 500), Group: GroupPidProfile, Offset: offYawLowpass},
		{Name: "level_limit", Type: u8, Constraint: rng(10, 90), Group: GroupPidProfile, Offset: offLevelLimit, Default: 55},
		{Name: "horizon_tilt_effect", Type: u8, Constraint: rng(0, 250), Group: GroupPidProfile, Offset: offHorizonTilt, Default: 75},

		// rate profile
		{Name: "rc_rate", Type: u8, Constraint: rng(1, 255), Group: GroupRateProfile, Offset: offRcRate, Default: 100},
		{Name: "rc_rate_yaw", Type: u8, Constraint: rng(1, 255), Group: GroupRateProfile, Offset: offRcRateYaw, Default: 100},
		{Name: "rc_expo", Type: u8, Constraint: rng(0, 100), Group: GroupRateProfile, Offset: offRcExpo},
		{Name: "rc_expo_yaw", Type: u8, Constraint: rng(0, 100), Group: GroupRateProfile, Offset: offRcExpoYaw},
		{Name: "thr_mid", Type: u8, Constraint: rng(0, 100), Group: GroupRateProfile, Offset: offThrMid, Default: 50},
		{Name: "thr_expo", Type: u8, Constraint: rng(0, 100), Group: GroupRateProfile, Offset: offThrExpo},
		{Name: "roll_srate", Type: u8, Constraint: rng(0, 100), Group: GroupRateProfile, Offset: offRollSrate, Default: 70},
		{Name: "pitch_srate", Type: u8, Constraint: rng(0, 100), Group: GroupRateProfile, Offset: offPitchSrate, Default: 70},
		{Name: "yaw_srate", Type: u8, Constraint: rng(0, 100), Group: GroupRateProfile, Offset: offYawSrate, Default: 70},
		{Name: "tpa_rate", Type: u8, Constraint: rng(0, 100), Group: GroupRateProfile, Offset: offTpaRate, Default: 10},
		{Name: "tpa_breakpoint", Type: u16, Constraint: rng(750, 2250), Group: GroupRateProfile, Offset: offTpaBreakpoint, Default: 1650},
	}
}
