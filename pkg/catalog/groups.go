package catalog

import "github.com/aeroset/aeroset-go/pkg/group"

// Configuration group IDs.
const (
	GroupGyro group.ID = iota + 1
	GroupAcc
	GroupCompass
	GroupBaro
	GroupBattery
	GroupRx
	GroupMotor
	GroupFailsafe
	GroupBoardAlign
	GroupGPS
	GroupBlackbox
	GroupTelemetry
	GroupOSD
	GroupSystem
	GroupPidProfile
	GroupRateProfile
)

// Profile instance bounds. The PID profile and rate profile groups are
// independently sized.
const (
	MaxProfileCount     = 3
	MaxRateProfileCount = 6
)

// Field offsets within each group instance, in bytes. These define the
// in-memory layout the registry's descriptors index into; the group
// sizes below must cover the last field of each group.

// gyro group (16 bytes)
const (
	offGyroAlign        = 0  // u8
	offGyroLpf          = 1  // u8
	offGyroSyncDenom    = 2  // u8
	offGyroLowpassType  = 3  // u8
	offGyroLowpassHz    = 4  // u8
	offGyroMoronThresh  = 5  // u8
	offGyroUse32k       = 6  // u8
	offGyroToUse        = 7  // u8
	offGyroNotch1Hz     = 8  // u16
	offGyroNotch1Cutoff = 10 // u16
	offGyroNotch2Hz     = 12 // u16
	offGyroNotch2Cutoff = 14 // u16
	sizeGyro            = 16
)

// accelerometer group (8 bytes)
const (
	offAccAlign     = 0 // u8
	offAccHardware  = 1 // u8
	offAccLpfHz     = 2 // u16
	offAccTrimPitch = 4 // i16
	offAccTrimRoll  = 6 // i16
	sizeAcc         = 8
)

// compass group (4 bytes)
const (
	offMagAlign       = 0 // u8
	offMagHardware    = 1 // u8
	offMagDeclination = 2 // i16
	sizeCompass       = 4
)

// barometer group (8 bytes)
const (
	offBaroHardware    = 0 // u8
	offBaroSampleCount = 1 // u8
	offBaroNoiseLpf    = 2 // u16
	offBaroCfVel       = 4 // u16
	offBaroCfAlt       = 6 // u16
	sizeBaro           = 8
)

// battery group (16 bytes)
const (
	offBatCapacity       = 0  // u16
	offVbatMaxCell       = 2  // u8
	offVbatFullCell      = 3  // u8
	offVbatMinCell       = 4  // u8
	offVbatWarningCell   = 5  // u8
	offVbatHysteresis    = 6  // u8
	offCurrentMeterType  = 7  // u8
	offBatteryMeterType  = 8  // u8
	offUseVbatAlerts     = 9  // u8
	offUseConsumpAlerts  = 10 // u8
	offConsumpWarningPct = 11 // u8
	offIbatScale         = 12 // i16
	offIbatOffset        = 14 // i16
	sizeBattery          = 16
)

// receiver group (22 bytes)
const (
	offMidRc            = 0  // u16
	offMinCheck         = 2  // u16
	offMaxCheck         = 4  // u16
	offRssiChannel      = 6  // i8
	offRssiScale        = 7  // u8
	offRssiInvert       = 8  // u8
	offRcInterp         = 9  // u8
	offRcInterpCh       = 10 // u8
	offRcInterpInt      = 11 // u8
	offFpvMixDegrees    = 12 // u8
	offSerialRxProvider = 13 // u8
	offSerialRxInverted = 14 // u8
	offSpektrumSatBind  = 15 // u8
	offRxMinUsec        = 16 // u16
	offRxMaxUsec        = 18 // u16
	offRxSpiProtocol    = 20 // u8
	sizeRx              = 22
)

// motor group (12 bytes)
const (
	offMinThrottle       = 0  // u16
	offMaxThrottle       = 2  // u16
	offMinCommand        = 4  // u16
	offMotorPwmRate      = 6  // u16
	offMotorPwmProtocol  = 8  // u8
	offUseUnsyncedPwm    = 9  // u8
	offYawMotorsReversed = 10 // u8
	sizeMotor            = 12
)

// failsafe group (8 bytes)
const (
	offFailsafeDelay         = 0 // u8
	offFailsafeOffDelay      = 1 // u8
	offFailsafeThrottle      = 2 // u16
	offFailsafeKillSwitch    = 4 // u8
	offFailsafeProcedure     = 5 // u8
	offFailsafeThrLowDelay   = 6 // u16
	sizeFailsafe             = 8
)

// board alignment group (6 bytes)
const (
	offAlignBoardRoll  = 0 // i16
	offAlignBoardPitch = 2 // i16
	offAlignBoardYaw   = 4 // i16
	sizeBoardAlign     = 6
)

// gps group (4 bytes)
const (
	offGpsProvider   = 0 // u8
	offGpsSbasMode   = 1 // u8
	offGpsAutoConfig = 2 // u8
	offGpsAutoBaud   = 3 // u8
	sizeGPS          = 4
)

// blackbox group (4 bytes)
const (
	offBlackboxDevice    = 0 // u8
	offBlackboxRateNum   = 1 // u8
	offBlackboxRateDenom = 2 // u8
	offBlackboxMotorTest = 3 // u8
	sizeBlackbox         = 4
)

// telemetry group (4 bytes)
const (
	offTlmSwitch         = 0 // u8
	offTlmInverted       = 1 // u8
	offFrskyUnit         = 2 // u8
	offFrskyVfasPrec     = 3 // u8
	sizeTelemetry        = 4
)

// osd group (10 bytes)
const (
	offOsdUnits        = 0 // u8
	offOsdRowShiftdown = 1 // u8
	offOsdRssiAlarm    = 2 // u8
	offOsdCapAlarm     = 4 // u16
	offOsdTimeAlarm    = 6 // u16
	offOsdAltAlarm     = 8 // u16
	sizeOSD            = 10
)

// system group (2 bytes)
const (
	offDebugMode      = 0 // u8
	offTaskStatistics = 1 // u8
	sizeSystem        = 2
)

// pid profile group (42 bytes, one instance per profile)
const (
	offPidPRoll          = 0  // u8
	offPidIRoll          = 1  // u8
	offPidDRoll          = 2  // u8
	offPidPPitch         = 3  // u8
	offPidIPitch         = 4  // u8
	offPidDPitch         = 5  // u8
	offPidPYaw           = 6  // u8
	offPidIYaw           = 7  // u8
	offPidDYaw           = 8  // u8
	offPidPLevel         = 9  // u8
	offPidILevel         = 10 // u8
	offPidDLevel         = 11 // u8
	offPidPAlt           = 12 // u8
	offPidIAlt           = 13 // u8
	offPidDAlt           = 14 // u8
	offDtermLowpassType  = 15 // u8
	offDtermLowpass      = 16 // u16
	offDtermNotchHz      = 18 // u16
	offDtermNotchCutoff  = 20 // u16
	offVbatPidGain       = 22 // u8
	offPidAtMinThrottle  = 23 // u8
	offAntiGravityThresh = 24 // u16
	offAntiGravityGain   = 26 // u16
	offSetpointRelax     = 28 // u8
	offDtermSetpointW    = 29 // u8
	offYawAccelLimit     = 30 // u16
	offAccelLimit        = 32 // u16
	offCrashDThreshold   = 34 // u16
	offCrashRecovery     = 36 // u8
	offItermWindup       = 37 // u8
	offYawLowpass        = 38 // u16
	offLevelLimit        = 40 // u8
	offHorizonTilt       = 41 // u8
	sizePidProfile       = 42
)

// rate profile group (12 bytes, one instance per rate profile)
const (
	offRcRate        = 0  // u8
	offRcRateYaw     = 1  // u8
	offRcExpo        = 2  // u8
	offRcExpoYaw     = 3  // u8
	offThrMid        = 4  // u8
	offThrExpo       = 5  // u8
	offRollSrate     = 6  // u8
	offPitchSrate    = 7  // u8
	offYawSrate      = 8  // u8
	offTpaRate       = 9  // u8
	offTpaBreakpoint = 10 // u16
	sizeRateProfile  = 12
)

// Layouts returns the group layout declarations for the given profile
// counts.
func Layouts(profileCount, rateProfileCount int) []group.Layout {
	return []group.Layout{
		{ID: GroupGyro, Name: "gyro", Size: sizeGyro, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupAcc, Name: "acc", Size: sizeAcc, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupCompass, Name: "compass", Size: sizeCompass, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupBaro, Name: "baro", Size: sizeBaro, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupBattery, Name: "battery", Size: sizeBattery, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupRx, Name: "rx", Size: sizeRx, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupMotor, Name: "motor", Size: sizeMotor, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupFailsafe, Name: "failsafe", Size: sizeFailsafe, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupBoardAlign, Name: "board_align", Size: sizeBoardAlign, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupGPS, Name: "gps", Size: sizeGPS, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupBlackbox, Name: "blackbox", Size: sizeBlackbox, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupTelemetry, Name: "telemetry", Size: sizeTelemetry, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupOSD, Name: "osd", Size: sizeOSD, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupSystem, Name: "system", Size: sizeSystem, Count: 1, Scope: group.ScopeGlobal},
		{ID: GroupPidProfile, Name: "pid_profile", Size: sizePidProfile, Count: profileCount, Scope: group.ScopeProfile},
		{ID: GroupRateProfile, Name: "rate_profile", Size: sizeRateProfile, Count: rateProfileCount, Scope: group.ScopeRateProfile},
	}
}
