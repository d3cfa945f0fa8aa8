package nav

import (
	"errors"
	"math"
	"testing"

	"solarnav/internal/orbit"
	"solarnav/internal/pose"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

// near compares element-wise with an absolute tolerance, so float noise on a
// zero entry is accepted.
func near(a, b pose.Pose, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// renderFrame does what the frame controller does for one window.
func renderFrame(t *testing.T, c *Context, sys *orbit.System, id ShipID) pose.Pose {
	t.Helper()
	cam, err := c.Camera(id)
	if err != nil {
		t.Fatalf("Camera(%v): %v", id, err)
	}
	if err := c.Commit(id, cam, sys.Traverse(cam, nil)); err != nil {
		t.Fatalf("Commit(%v): %v", id, err)
	}
	return cam
}

// settle renders both windows until they are live.
func settle(t *testing.T, c *Context, sys *orbit.System) {
	t.Helper()
	for i := 0; i < settleFrames; i++ {
		renderFrame(t, c, sys, Mothership)
		renderFrame(t, c, sys, Scoutship)
	}
	for id := Mothership; id < ShipCount; id++ {
		if !c.Ship(id).Settle.Live() {
			t.Fatalf("%v still settling after %d frames", id, settleFrames)
		}
	}
}

func switchMode(t *testing.T, c *Context, m Mode) {
	t.Helper()
	if !c.Apply(SwitchMode(m)) {
		t.Fatalf("switch to %v rejected", m)
	}
}

func TestEyePointScenario(t *testing.T) {
	c := NewContext()
	for i := 0; i < 3; i++ {
		if !c.Apply(AdjustAxis(EyeY, +1)) {
			t.Fatalf("press %d rejected", i)
		}
	}

	if got := c.Ship(Mothership).Absolute.Current[EyeY]; math.Abs(got-10.3) > eps {
		t.Errorf("mothership eyeY = %v, want 10.3", got)
	}
	if got := c.Ship(Scoutship).Absolute.Current[EyeY]; got != 8 {
		t.Errorf("scoutship eyeY = %v, want 8", got)
	}
}

func TestAbsoluteEditsFollowActiveShip(t *testing.T) {
	c := NewContext()
	c.Apply(SelectShip(Scoutship))
	c.Apply(AdjustAxis(LookAtZ, -1))

	if got := c.Ship(Scoutship).Absolute.Current[LookAtZ]; math.Abs(got+1.1) > eps {
		t.Errorf("scout lookAtZ = %v, want -1.1", got)
	}
	if got := c.Ship(Mothership).Absolute.Current[LookAtZ]; got != -1 {
		t.Errorf("mother lookAtZ = %v, want -1", got)
	}
}

func TestAxisIgnoredOutsideAbsolute(t *testing.T) {
	c := NewContext()
	switchMode(t, c, Relative)
	if c.Apply(AdjustAxis(EyeX, +1)) {
		t.Fatal("absolute edit accepted in Relative mode")
	}
	if got := c.Ship(Mothership).Absolute.Current[EyeX]; got != 0 {
		t.Fatalf("eyeX changed to %v", got)
	}
}

func TestAbsoluteStepScaling(t *testing.T) {
	c := NewContext()
	for i := 0; i < 5; i++ {
		c.Apply(ScaleSteps(-1))
	}
	for axis, s := range c.Steps() {
		if s != minAxisStep {
			t.Fatalf("axis %d step = %v, want floor %v", axis, s, minAxisStep)
		}
	}

	c.Apply(ScaleSteps(+1))
	c.Apply(AdjustAxis(EyeZ, +1))
	if got := c.Ship(Mothership).Absolute.Current[EyeZ]; math.Abs(got-20.15) > eps {
		t.Errorf("eyeZ = %v, want 20.15", got)
	}
}

func TestSettleLoadsDefaultsPerWindow(t *testing.T) {
	c := NewContext()
	sys := orbit.NewSystem()
	c.Apply(AdjustAxis(EyeY, +1))

	renderFrame(t, c, sys, Mothership)
	if got := c.Ship(Mothership).Absolute.Current[EyeY]; got != 10 {
		t.Fatalf("settle did not restore default eyeY, got %v", got)
	}
	if got := c.Ship(Mothership).Settle.Remaining(); got != 1 {
		t.Fatalf("mother settle remaining = %d, want 1", got)
	}
	if got := c.Ship(Scoutship).Settle.Remaining(); got != settleFrames {
		t.Fatalf("scout settle changed by mother's frame: %d", got)
	}

	renderFrame(t, c, sys, Mothership)
	if !c.Ship(Mothership).Settle.Live() {
		t.Fatal("mother not live after two frames")
	}

	c.Apply(AdjustAxis(EyeY, +1))
	renderFrame(t, c, sys, Mothership)
	if got := pose.Position(c.Ship(Mothership).LastPose).Y(); math.Abs(got-10.1) > 1e-6 {
		t.Errorf("live camera y = %v, want 10.1", got)
	}
}

func TestRedundantModeSwitchIsNoop(t *testing.T) {
	c := NewContext()
	sys := orbit.NewSystem()
	settle(t, c, sys)
	if c.Apply(SwitchMode(Absolute)) {
		t.Fatal("switch to current mode accepted")
	}
	if !c.Ship(Mothership).Settle.Live() {
		t.Fatal("redundant switch restarted settling")
	}
}

func TestModeIsolation(t *testing.T) {
	c := NewContext()
	sys := orbit.NewSystem()

	switchMode(t, c, OrbitLock)
	c.Apply(SelectTarget(orbit.Saturn))
	switchMode(t, c, Relative)
	settle(t, c, sys)
	c.Apply(Move(Yaw, +1))
	if !c.Relative().Pending() {
		t.Fatal("yaw press did not set a pending edit")
	}

	switchMode(t, c, OrbitLock)
	switchMode(t, c, Relative)

	if c.Relative().Pending() {
		t.Error("pending relative edit survived a mode round trip")
	}
	if got := c.Ship(Mothership).Orbit.Target; got != orbit.Saturn {
		t.Errorf("orbit target = %v, want Saturn", got)
	}
}

func TestStandoffClampScenario(t *testing.T) {
	c := NewContext()
	switchMode(t, c, OrbitLock)
	c.Apply(SelectTarget(orbit.Saturn))

	o := &c.Ship(Mothership).Orbit
	if o.Standoff != defaultStandoff || o.Speed != defaultSpeed {
		t.Fatalf("target reset gave standoff %v speed %v", o.Standoff, o.Speed)
	}

	clamped := false
	for i := 0; i < 5; i++ {
		c.Apply(Approach(+1))
		if o.Standoff > maxStandoff {
			t.Fatalf("press %d: standoff %v beyond %v", i, o.Standoff, maxStandoff)
		}
		if clamped && o.Standoff != maxStandoff {
			t.Fatalf("press %d: standoff left the clamp: %v", i, o.Standoff)
		}
		clamped = clamped || o.Standoff == maxStandoff
	}
	if o.Standoff != maxStandoff {
		t.Fatalf("standoff = %v, want %v", o.Standoff, maxStandoff)
	}
	for i := 0; i < 50; i++ {
		c.Apply(Approach(+1))
	}
	if o.Standoff != maxStandoff {
		t.Fatalf("standoff after extra presses = %v", o.Standoff)
	}

	c.Apply(Approach(-1))
	if math.Abs(o.Standoff+1.1) > eps {
		t.Errorf("retreat gave %v, want -1.1", o.Standoff)
	}
	if got := c.Ship(Scoutship).Orbit.Standoff; got != defaultStandoff {
		t.Errorf("scout standoff changed to %v", got)
	}
}

func TestSelectTargetAffectsActiveShipOnly(t *testing.T) {
	c := NewContext()
	switchMode(t, c, OrbitLock)
	c.Apply(Approach(+1))
	mother := c.Ship(Mothership).Orbit

	c.Apply(SelectShip(Scoutship))
	c.Apply(ScaleSteps(+1))
	c.Apply(SelectTarget(orbit.Jupiter))

	if got := c.Ship(Mothership).Orbit; got != mother {
		t.Errorf("mother orbit state changed: %+v -> %+v", mother, got)
	}
	scout := c.Ship(Scoutship).Orbit
	if scout.Target != orbit.Jupiter || scout.Speed != defaultSpeed || scout.Standoff != defaultStandoff {
		t.Errorf("scout orbit state = %+v", scout)
	}
}

func TestSelectTargetRejected(t *testing.T) {
	c := NewContext()
	if c.Apply(SelectTarget(orbit.Mars)) {
		t.Fatal("target accepted outside OrbitLock")
	}
	switchMode(t, c, OrbitLock)
	if c.Apply(SelectTarget(orbit.Sun)) || c.Apply(SelectTarget(orbit.BodyCount)) {
		t.Fatal("invalid target accepted")
	}
	if got := c.Ship(Mothership).Orbit.Target; got != orbit.Earth {
		t.Fatalf("target = %v, want Earth", got)
	}
}

func TestApproachSpeedFloor(t *testing.T) {
	c := NewContext()
	switchMode(t, c, OrbitLock)
	c.Apply(ScaleSteps(+1))
	c.Apply(ScaleSteps(+1))
	if got := c.Ship(Mothership).Orbit.Speed; math.Abs(got-0.3) > eps {
		t.Fatalf("speed = %v, want 0.3", got)
	}
	if got := c.Ship(Scoutship).Orbit.Speed; got != defaultSpeed {
		t.Fatalf("inactive ship speed = %v, want %v", got, defaultSpeed)
	}
	for i := 0; i < 10; i++ {
		c.Apply(ScaleSteps(-1))
	}
	if got := c.Ship(Mothership).Orbit.Speed; got != minSpeed {
		t.Fatalf("speed = %v, want floor %v", got, minSpeed)
	}
}

func TestRelativeEditAppliesOnActiveWindow(t *testing.T) {
	c := NewContext()
	sys := orbit.NewSystem()
	switchMode(t, c, Relative)
	settle(t, c, sys)

	motherBefore := c.Ship(Mothership).RelativePose
	scoutBefore := c.Ship(Scoutship).RelativePose
	c.Apply(Move(Thrust, +1))

	if got := renderFrame(t, c, sys, Scoutship); got != scoutBefore {
		t.Fatalf("scout window moved on mother's edit")
	}
	if !c.Relative().Pending() {
		t.Fatal("edit consumed by the wrong window")
	}

	got := renderFrame(t, c, sys, Mothership)
	want := pose.Translate(0, 0, defaultThrust).Mul4(motherBefore)
	if !near(got, want, eps) {
		t.Fatalf("mother camera = %v, want %v", got, want)
	}
	if c.Relative().Pending() {
		t.Fatal("edit still pending after being applied")
	}

	if again := renderFrame(t, c, sys, Mothership); again != got {
		t.Fatal("edit applied twice")
	}
}

func TestRelativeMotions(t *testing.T) {
	cases := []struct {
		motion Motion
		dir    int
		want   pose.Pose
	}{
		{Yaw, +1, pose.RotateY(defaultTurnAngle)},
		{Yaw, -1, pose.RotateY(-defaultTurnAngle)},
		{Pitch, +1, pose.RotateX(defaultTurnAngle)},
		{Roll, -1, pose.RotateZ(-defaultTurnAngle)},
		{Thrust, -1, pose.Translate(0, 0, -defaultThrust)},
	}
	for _, tc := range cases {
		c := NewContext()
		sys := orbit.NewSystem()
		switchMode(t, c, Relative)
		settle(t, c, sys)
		before := c.Ship(Mothership).RelativePose

		c.Apply(Move(tc.motion, tc.dir))
		got := renderFrame(t, c, sys, Mothership)
		if want := tc.want.Mul4(before); !near(got, want, eps) {
			t.Errorf("%v %+d: camera = %v, want %v", tc.motion, tc.dir, got, want)
		}
	}
}

func TestNonActiveShipStable(t *testing.T) {
	c := NewContext()
	sys := orbit.NewSystem()
	switchMode(t, c, Relative)
	settle(t, c, sys)

	first := renderFrame(t, c, sys, Scoutship)
	for i := 0; i < 20; i++ {
		c.Apply(Move(Yaw, +1))
		sys.Tick()
		if got := renderFrame(t, c, sys, Scoutship); got != first {
			t.Fatalf("frame %d: scout pose drifted", i)
		}
	}
}

func TestActiveSwitchRetargetsPendingEdit(t *testing.T) {
	c := NewContext()
	sys := orbit.NewSystem()
	switchMode(t, c, Relative)
	settle(t, c, sys)

	mother := c.Ship(Mothership).RelativePose
	scout := c.Ship(Scoutship).RelativePose
	c.Apply(Move(Roll, +1))
	c.Apply(SelectShip(Scoutship))

	if got := renderFrame(t, c, sys, Mothership); got != mother {
		t.Fatal("previously active ship moved after losing control")
	}
	got := renderFrame(t, c, sys, Scoutship)
	if want := pose.RotateZ(defaultTurnAngle).Mul4(scout); !near(got, want, eps) {
		t.Fatalf("scout camera = %v, want %v", got, want)
	}
}

func TestRelativeSpeedScaling(t *testing.T) {
	c := NewContext()
	switchMode(t, c, Relative)
	c.Apply(ScaleSteps(+1))
	r := c.Relative()
	if math.Abs(r.Turn[Yaw]-2.1) > eps || math.Abs(r.Thrust-0.13) > eps {
		t.Fatalf("after scale up: turn %v thrust %v", r.Turn, r.Thrust)
	}
	for i := 0; i < 100; i++ {
		c.Apply(ScaleSteps(-1))
	}
	r = c.Relative()
	for i, a := range r.Turn {
		if a <= 0 || a > minTurnAngle+eps {
			t.Errorf("turn %d = %v after scaling down", i, a)
		}
	}
	if r.Thrust <= 0 || r.Thrust > minThrust+eps {
		t.Errorf("thrust = %v after scaling down", r.Thrust)
	}
}

func TestOrbitLockFollowsTarget(t *testing.T) {
	c := NewContext()
	sys := orbit.NewSystem()
	switchMode(t, c, OrbitLock)
	c.Apply(SelectTarget(orbit.Saturn))
	for i := 0; i < 28; i++ {
		sys.Tick()
	}
	settle(t, c, sys)

	got := renderFrame(t, c, sys, Mothership)

	bodyInv, err := pose.Invert(sys.Transform(orbit.Saturn))
	if err != nil {
		t.Fatal(err)
	}
	want := pose.Translate(0, lockDrop, defaultStandoff).Mul4(pose.RotateX(lockPitch)).Mul4(bodyInv)
	if !near(got, want, 1e-6) {
		t.Fatalf("orbit camera = %v, want %v", got, want)
	}

	// The camera keeps its standoff while the body moves. The lock uses the
	// capture from the previous frame, so it trails the body by one tick.
	var lagBody mgl64.Vec3
	for i := 0; i < 30; i++ {
		lagBody = pose.Position(sys.Transform(orbit.Saturn))
		sys.Tick()
		renderFrame(t, c, sys, Mothership)
	}
	cam := pose.Position(c.Ship(Mothership).LastPose)
	body := pose.Position(sys.Transform(orbit.Saturn))
	wantDist := math.Hypot(lockDrop, defaultStandoff)
	if d := cam.Sub(lagBody).Len(); math.Abs(d-wantDist) > 1e-6 {
		t.Fatalf("camera %v is %v from Saturn (now %v), want %v", cam, d, body, wantDist)
	}
}

func TestOrbitLockNonActiveReloadsUnlessTracking(t *testing.T) {
	c := NewContext()
	sys := orbit.NewSystem()
	switchMode(t, c, OrbitLock)
	settle(t, c, sys)

	scout := renderFrame(t, c, sys, Scoutship)
	sys.Tick()
	if got := renderFrame(t, c, sys, Scoutship); got != scout {
		t.Fatal("non-tracking inactive ship recomputed its orbit")
	}

	c.Apply(SelectShip(Scoutship))
	if !c.Ship(Mothership).Tracking {
		t.Fatal("ship losing control in OrbitLock is not tracking")
	}
	if c.Ship(Scoutship).Tracking {
		t.Fatal("newly active ship marked tracking")
	}

	mother := renderFrame(t, c, sys, Mothership)
	sys.Tick()
	if got := renderFrame(t, c, sys, Mothership); got == mother {
		t.Fatal("tracking ship did not follow its target")
	}

	switchMode(t, c, Absolute)
	for id := Mothership; id < ShipCount; id++ {
		if c.Ship(id).Tracking {
			t.Errorf("%v still tracking after mode switch", id)
		}
	}
}

func TestSelectShipOutsideOrbitLockDoesNotTrack(t *testing.T) {
	c := NewContext()
	c.Apply(ToggleShip())
	if c.Active() != Scoutship {
		t.Fatalf("active = %v, want Scoutship", c.Active())
	}
	if c.Ship(Mothership).Tracking {
		t.Fatal("tracking set outside OrbitLock")
	}
	if c.Apply(SelectShip(Scoutship)) {
		t.Fatal("re-selecting the active ship reported a change")
	}
}

func TestOrbitLockSingularTargetKeepsPose(t *testing.T) {
	c := NewContext()
	sys := orbit.NewSystem()
	switchMode(t, c, OrbitLock)
	settle(t, c, sys)

	ship := c.Ship(Mothership)
	before := ship.OrbitPose
	ship.Capture.Record(orbit.Earth, pose.Pose{})

	got, err := c.Camera(Mothership)
	if !errors.Is(err, pose.ErrSingular) {
		t.Fatalf("err = %v, want ErrSingular", err)
	}
	if got != before || ship.OrbitPose != before {
		t.Fatal("singular target changed the orbit pose")
	}
}

func TestOrbitLockMissingCapture(t *testing.T) {
	c := NewContext()
	switchMode(t, c, OrbitLock)
	ship := c.Ship(Mothership)
	ship.Settle = Settle{}

	got, err := c.Camera(Mothership)
	if !errors.Is(err, ErrNoCapture) {
		t.Fatalf("err = %v, want ErrNoCapture", err)
	}
	if got != ship.OrbitPose {
		t.Fatal("missing capture did not return the cached pose")
	}
}

func TestCommitSingularKeepsLastPose(t *testing.T) {
	c := NewContext()
	before := c.Ship(Scoutship).LastPose
	if err := c.Commit(Scoutship, pose.Pose{}, orbit.Capture{}); !errors.Is(err, pose.ErrSingular) {
		t.Fatalf("err = %v, want ErrSingular", err)
	}
	if c.Ship(Scoutship).LastPose != before {
		t.Fatal("singular commit replaced LastPose")
	}
}

func TestDegenerateLookAtKeepsView(t *testing.T) {
	c := NewContext()
	sys := orbit.NewSystem()
	settle(t, c, sys)
	good := renderFrame(t, c, sys, Mothership)

	ship := c.Ship(Mothership)
	ship.Absolute.Current[UpY] = 0
	got, err := c.Camera(Mothership)
	if !errors.Is(err, pose.ErrDegenerate) {
		t.Fatalf("err = %v, want ErrDegenerate", err)
	}
	if got != good {
		t.Fatal("degenerate triple replaced the view")
	}
}

func TestStatusSnapshot(t *testing.T) {
	c := NewContext()
	switchMode(t, c, OrbitLock)
	c.Apply(SelectTarget(orbit.Neptune))
	c.Apply(ToggleShip())

	st := c.Status()
	if st.Mode != OrbitLock || st.Active != Scoutship {
		t.Fatalf("status = %+v", st)
	}
	if st.Ships[Mothership].Target != orbit.Neptune || !st.Ships[Mothership].Tracking {
		t.Errorf("mother status = %+v", st.Ships[Mothership])
	}
	if !st.Ships[Scoutship].Settling {
		t.Errorf("scout should still be settling")
	}
}
