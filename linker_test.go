package main

import "testing"

func TestCanonicalModuleAliases(t *testing.T) {
	for alias, full := range aliasOf {
		if got := canonicalModule(alias); got != full {
			t.Fatalf("canonicalModule(%q) = %q, want %q", alias, got, full)
		}
	}
}

func TestCanonicalModulePassesThroughFullNames(t *testing.T) {
	for full := range knownHostFunctions {
		if got := canonicalModule(full); got != full {
			t.Fatalf("canonicalModule(%q) = %q, want %q (unchanged)", full, got, full)
		}
	}
}

func TestCanonicalModuleUnknownPassesThrough(t *testing.T) {
	if got := canonicalModule("nonsense"); got != "nonsense" {
		t.Fatalf("canonicalModule(%q) = %q, want unchanged", "nonsense", got)
	}
}

func TestKnownHostFunctionsCoversEveryAliasTarget(t *testing.T) {
	for _, full := range aliasOf {
		if _, ok := knownHostFunctions[full]; !ok {
			t.Fatalf("alias target %q has no entry in knownHostFunctions", full)
		}
	}
}

// TestFuncAliasesResolveToKnownFullNames checks that every short
// function alias listed in funcAliasOf names a real function in its
// module's full knownHostFunctions entry: every short alias must name a
// full host call with identical semantics.
func TestFuncAliasesResolveToKnownFullNames(t *testing.T) {
	for module, aliases := range funcAliasOf {
		full, ok := knownHostFunctions[module]
		if !ok {
			t.Fatalf("funcAliasOf references unknown module %q", module)
		}
		for short, target := range aliases {
			if !full[target] {
				t.Fatalf("alias %s.%s -> %q, but %q has no such function", module, short, target, module)
			}
		}
	}
}

// TestFuncAliasModulesHaveShortModuleAlias ensures every module with
// short function aliases also has a short module alias in aliasOf, so
// the (module, name) pairs (e.g. "g.a") actually resolve.
func TestFuncAliasModulesHaveShortModuleAlias(t *testing.T) {
	hasShort := map[string]bool{}
	for _, full := range aliasOf {
		hasShort[full] = true
	}
	for module := range funcAliasOf {
		if !hasShort[module] {
			t.Fatalf("module %q has function aliases but no short module alias", module)
		}
	}
}
