package proctor

import "github.com/nvasanth/candex/internal/api"

// ViolationType names a proctoring-detected integrity concern. Values
// match the backend's event vocabulary.
type ViolationType string

const (
	ViolationNoFace        ViolationType = "no_face"
	ViolationMultipleFaces ViolationType = "multiple_faces"
	ViolationFaceTooFar    ViolationType = "face_too_far"
	ViolationFaceTurned    ViolationType = "face_turned"
	ViolationLookingAway   ViolationType = "looking_away"
	ViolationPhoneDetected ViolationType = "phone_detected"
	ViolationTabSwitch     ViolationType = "tab_switch"
)

// Violation is an integrity event raised to the host UI. Ephemeral:
// consumed by the callback, not retained here.
type Violation struct {
	Type    ViolationType
	Details string
}

// Interpret maps a frame analysis to at most one violation. When several
// conditions are true only the highest-priority one is reported:
// no-face > multiple-faces > looking-away > phone-detected. An absent
// face is the most severe integrity signal.
func Interpret(a *api.FrameAnalysis) (Violation, bool) {
	switch {
	case !a.FaceDetected:
		return Violation{Type: ViolationNoFace, Details: "no face visible in frame"}, true
	case a.MultipleFaces:
		return Violation{Type: ViolationMultipleFaces, Details: "more than one face in frame"}, true
	case a.LookingAway:
		return Violation{Type: ViolationLookingAway, Details: "candidate looking away from screen"}, true
	case a.PhoneDetected:
		return Violation{Type: ViolationPhoneDetected, Details: "phone visible in frame"}, true
	}
	return Violation{}, false
}
