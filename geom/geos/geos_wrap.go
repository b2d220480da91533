package geos

/*
#cgo LDFLAGS: -lgeos_c
#include "geos_c.h"
#include <stdarg.h>
#include <stdio.h>

extern void goLogGeosMessage(int isError, char *msg);

static void formatAndLog(int isError, const char *fmt, va_list args) {
	char buf[512];
	vsnprintf(buf, sizeof(buf), fmt, args);
	goLogGeosMessage(isError, buf);
}

void polysplitNotice(const char *fmt, ...) {
	va_list args;
	va_start(args, fmt);
	formatAndLog(0, fmt, args);
	va_end(args);
}

void polysplitError(const char *fmt, ...) {
	va_list args;
	va_start(args, fmt);
	formatAndLog(1, fmt, args);
	va_end(args);
}

GEOSContextHandle_t polysplitInitGEOS() {
	return initGEOS_r(polysplitNotice, polysplitError);
}
*/
import "C"
