package domain

// ValidateEvent checks the temporal and pricing rules that go beyond per-field presence checks.
// It never fails hard: every broken rule adds an entry to the returned collection.
func ValidateEvent(dto EventDto) FieldErrors {
	var errs FieldErrors

	if dto.EndEventDateTime.Before(dto.BeginEventDateTime) {
		errs.Reject("endEventDateTime", CodeWrongValue,
			"endEventDateTime must not be before beginEventDateTime", dto.EndEventDateTime)
	}
	if dto.BeginEventDateTime.Before(dto.CloseEnrollmentDateTime) {
		errs.Reject("beginEventDateTime", CodeWrongValue,
			"beginEventDateTime must not be before closeEnrollmentDateTime", dto.BeginEventDateTime)
	}
	if dto.CloseEnrollmentDateTime.Before(dto.BeginEnrollmentDateTime) {
		errs.Reject("closeEnrollmentDateTime", CodeWrongValue,
			"closeEnrollmentDateTime must not be before beginEnrollmentDateTime", dto.CloseEnrollmentDateTime)
	}

	// A zero maxPrice means the price has no upper bound.
	if dto.MaxPrice != 0 && dto.BasePrice > dto.MaxPrice {
		errs.Reject("basePrice", CodeWrongValue, "basePrice must not exceed maxPrice", dto.BasePrice)
		errs.Reject("maxPrice", CodeWrongValue, "maxPrice must not be below basePrice", dto.MaxPrice)
	}

	return errs
}
