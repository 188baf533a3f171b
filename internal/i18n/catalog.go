package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys with format verbs. Plain keys are used inline by callers.
const (
	FoundNamespaces = "found %d namespaces"
	FoundCategories = "found %d categories"
	FoundExpenses   = "found %d expenses"
)

var spanish = map[string]string{
	// auth
	"session expired":                     "Su sesión expiró",
	"invalid email or password":           "Email o contraseña inválida",
	"invalid password":                    "Contraseña inválida",
	"registration could not be completed": "El registro no pudo ser completado",
	"user already completed registration": "Este usuario ya completó su registro previamente",
	"registration completed successfully": "El registro se ha completado satisfactoriamente",
	"login successful":                    "Ingreso exitoso",
	"a user with this email already exists": "Ya existe un usuario con este email",
	"user provisioned successfully":         "El usuario fue creado satisfactoriamente",
	"email is required":                     "El email es obligatorio",
	"email must be valid":                   "El email no es válido",
	"invalid or missing API key":            "Llave de API inválida o ausente",
	"admin endpoints are not configured":    "Los servicios de administración no están configurados",

	// namespaces
	"namespaces must have a name":                                      "Los espacios deben tener un nombre",
	"namespaces must have at least 5 characters":                       "Los espacios deben tener al menos 5 carácteres",
	"namespaces must not have more than 25 characters":                 "Los espacios no deben tener más de 25 carácteres",
	"namespace already exists":                                         "El espacio ya existe",
	"namespace created successfully":                                   "El espacio fue creado satisfactoriamente",
	"namespace could not be updated":                                   "El espacio no pudo ser actualizado",
	"namespace updated":                                                "Espacio actualizado",
	"namespace could not be deleted":                                   "El espacio no pudo ser borrado",
	"namespace could not be deleted, must keep at least one namespace": "El espacio no pudo ser borrado. Debes tener al menos un espacio",
	"namespace deleted":                                                "Espacio borrado",

	// categories
	"categories must have a name":                      "Las categorías deben tener un nombre",
	"categories must have at least 5 characters":       "Las categorías deben tener al menos 5 carácteres",
	"categories must not have more than 25 characters": "Las categorías no deben tener más de 25 carácteres",
	"category already exists in this namespace":        "La categoría ya existe en este espacio",
	"category could not be created":                    "La categoría no pudo ser creada",
	"category created successfully":                    "La categoría fue creada satisfactoriamente",
	"cannot view categories":                           "No se pueden ver las categorías",
	"category could not be updated":                    "La categoría no pudo ser actualizada",
	"category updated successfully":                    "La categoría fue actualizada satisfactoriamente",
	"category could not be deleted":                    "La categoría no pudo ser borrada",
	"category deleted successfully":                    "La categoría fue borrada satisfactoriamente",

	// expenses
	"expenses must have a merchant":                       "Los gastos deben tener un comerciante",
	"merchant must have at least 5 characters":            "El comerciante debe tener al menos 5 carácteres",
	"merchant must not have more than 50 characters":      "El comerciante no debe tener más de 50 carácteres",
	"expenses must not be in the future":                  "Los gastos no deben ser futuros",
	"currency must be COP or USD":                         "La moneda debe ser COP ó USD",
	"description must not have more than 255 characters": "La descripción no debe tener más de 255 carácteres",
	"amount must be a number":                             "El monto debe ser un número",
	"invalid date":                                        "Fecha inválida",
	"page must be at least 1":                             "La página debe ser al menos 1",
	"page size must be between 1 and 100":                 "El tamaño de página debe estar entre 1 y 100",
	"expense could not be created":                        "El gasto no pudo ser creado",
	"expense created successfully":                        "El gasto fue creado satisfactoriamente",
	"cannot view expenses":                                "No se pueden ver los gastos",
	"cannot view the expense":                             "No se puede ver el gasto",
	"expense could not be updated":                        "El gasto no pudo ser actualizado",
	"expense updated successfully":                        "El gasto fue actualizado satisfactoriamente",
	"expense could not be deleted":                        "El gasto no pudo ser eliminado",
	"expense deleted successfully":                        "El gasto fue eliminado satisfactoriamente",

	// general
	"invalid input":         "Datos inválidos",
	"access denied":         "Acceso denegado",
	"operation not allowed": "Operación no permitida",
	"something went wrong":  "Algo salió mal",
	"App working correctly": "App working correctly",
}

func init() {
	for key, msg := range spanish {
		_ = message.SetString(language.Spanish, key, msg)
	}

	setPlural(language.Spanish, FoundNamespaces, "Se encontró %d espacio", "Se encontraron %d espacios")
	setPlural(language.Spanish, FoundCategories, "Se encontró %d categoría", "Se encontraron %d categorías")
	setPlural(language.Spanish, FoundExpenses, "Se encontró %d gasto", "Se encontraron %d gastos")

	setPlural(language.English, FoundNamespaces, "found %d namespace", "found %d namespaces")
	setPlural(language.English, FoundCategories, "found %d category", "found %d categories")
	setPlural(language.English, FoundExpenses, "found %d expense", "found %d expenses")
}

func setPlural(tag language.Tag, key, one, other string) {
	_ = message.Set(tag, key, plural.Selectf(1, "%d",
		"=1", one,
		plural.Other, other,
	))
}
