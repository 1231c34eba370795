package culler

var IsExcludedDomain = isExcludedDomain
