// Package sentiment provides the lexicon-based comment analyzer.
//
// Analyze tokenizes the text and averages AFINN word valences over all
// tokens, so the raw polarity stays within [-5,5] with unlisted words
// diluting toward zero. The scoring pipeline normalizes the value into
// [0,1] itself.
package sentiment
