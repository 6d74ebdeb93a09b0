// Package specdoc generates HTML documentation pages from RDF vocabulary
// descriptions, reproducing the output of a decommissioned generator
// byte for byte, bugs included.
//
// The bug this package exists to reproduce is ordering: the old generator
// emitted a class's incoming-property lists, known subclasses, and declared
// disjoint classes in the iteration order of its runtime's string-hashed
// associative array. That order looks arbitrary but is fully determined by
// the container's slot layout after inserting the terms in document order.
// Reorder recomputes it exactly:
//
//	ordered, err := specdoc.Reorder(names, specdoc.Width64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The width selects which historical build of the legacy runtime to
// emulate; 32-bit and 64-bit builds hashed strings differently and
// therefore ordered lists differently.
//
// # Generating documentation
//
// Generator ties the pieces together: it loads a vocabulary
// (vocab.Load), applies the hand-curated overrides table where one
// exists (overrides.Table), falls back to Reorder everywhere else, and
// renders one page per class plus an index:
//
//	gen, err := specdoc.NewGenerator(ctx, voc,
//	    specdoc.WithWidth(specdoc.Width64),
//	    specdoc.WithTemplates(tpl),
//	    specdoc.WithWorkers(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	manifest, err := gen.Generate(outDir)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Generate also writes a manifest of per-file checksums so compatibility
// runs can diff against a captured legacy tree without shipping it.
//
// # Package Structure
//
//   - Public API: reorder.go (Reorder, Width), generator.go (Generator)
//   - Configuration: options.go (Option, With* functions)
//   - Output identity: fingerprint.go (page fingerprints), manifest.go
//   - Legacy arithmetic: internal/legacyhash (string hash variants),
//     internal/slottable (probe, growth, slot-order read-out)
//   - Collaborators: vocab/ (RDF extraction), overrides/ (manual order
//     table), render/ (templates, linkification)
package specdoc
