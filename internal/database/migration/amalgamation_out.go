package migration

import "legaldocs/internal/model"

const consentOutTypesEnum = "consent_out_types"

// amalgamationOut adds amalgamation-out tracking to businesses and the
// consent type to continuation-out consents.
var amalgamationOut = Revision{
	ID:           "fe158a53151f",
	DownRevision: "24b59f535ec3",
	Description:  "amalgamation_out",
	Up: []migrationStep{
		{
			Name: "create_type_consent_out_types",
			SQL:  createEnumSQL(consentOutTypesEnum, consentOutTypeValues()),
		},
		{
			Name: "add_column_businesses_amalgamation_out_date",
			SQL:  `ALTER TABLE businesses ADD COLUMN amalgamation_out_date TIMESTAMP WITH TIME ZONE NULL;`,
		},
		{
			Name: "add_column_businesses_version_amalgamation_out_date",
			SQL:  `ALTER TABLE businesses_version ADD COLUMN amalgamation_out_date TIMESTAMP WITH TIME ZONE NULL;`,
		},
		{
			Name: "add_column_consent_continuation_outs_consent_type",
			SQL: `ALTER TABLE consent_continuation_outs
  ADD COLUMN consent_type ` + consentOutTypesEnum + ` NOT NULL DEFAULT '` + string(model.ConsentOutContinuation) + `';`,
		},
	},
	Down: []migrationStep{
		{
			Name: "drop_column_consent_continuation_outs_consent_type",
			SQL:  `ALTER TABLE consent_continuation_outs DROP COLUMN consent_type;`,
		},
		{
			Name: "drop_column_businesses_version_amalgamation_out_date",
			SQL:  `ALTER TABLE businesses_version DROP COLUMN amalgamation_out_date;`,
		},
		{
			Name: "drop_column_businesses_amalgamation_out_date",
			SQL:  `ALTER TABLE businesses DROP COLUMN amalgamation_out_date;`,
		},
		{
			Name: "drop_type_consent_out_types",
			SQL:  `DROP TYPE IF EXISTS ` + consentOutTypesEnum + `;`,
		},
	},
}

func consentOutTypeValues() []string {
	types := model.ConsentOutTypes()
	values := make([]string, len(types))
	for i, t := range types {
		values[i] = string(t)
	}
	return values
}
