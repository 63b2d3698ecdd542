// Package profile persists control profiles: the processors string configured
// for a named control.
//
// A profile is checked against the processor registry before it is saved, so a
// typo in a processor or parameter name is reported when the profile is
// written rather than when the control is first used.
//
// Profiles are stored in the control_profiles table. Control names compare
// case-insensitively, the same way interned names do.
//
//	repo := profile.NewSQLiteRepository(db.DB)
//	mgr := profile.NewManager(repo, registry)
//	err := mgr.Set(ctx, &profile.Profile{
//	    Control:    "leftTrigger",
//	    ValueType:  "axis",
//	    Processors: "axisDeadzone, scale(factor=2)",
//	})
//
//	p, _ := mgr.Get(ctx, "LEFTTRIGGER")
//	stack, _ := profile.BuildStack[float32](registry, p)
package profile
