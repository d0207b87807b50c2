// Package output loads the numeric outputs of one RCE model run (time.out and
// profile.out) into named time series and profile records.
package output
