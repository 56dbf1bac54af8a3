// Package sentiment implements the lexicon-based compound polarity scorer.
//
// The Analyzer is constructed once from a VADER-style lexicon file and
// injected into the analysis pipeline. Scoring is pure and deterministic:
// the same text always yields the same compound score in [-1,1].
package sentiment
