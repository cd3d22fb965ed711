package isa

// Primary opcode byte constants, transcribed from the ISA's opcode table.
const (
	OpNOP byte = 0x00
	OpEXT byte = 0x01
	OpSET_C byte = 0x02
	OpCLR_C byte = 0x03
	OpSET_I byte = 0x04
	OpCLR_I byte = 0x05
	OpSET_B byte = 0x06
	OpCLR_B byte = 0x07
	OpMV_A_BR byte = 0x08
	OpMV_BR_A byte = 0x09
	OpMV_A_A byte = 0x0a
	OpMV_A_B byte = 0x0b
	OpMV_A_C byte = 0x0c
	OpMV_A_D byte = 0x0d
	OpMV_B_A byte = 0x0e
	OpMV_B_B byte = 0x0f
	OpMV_B_C byte = 0x10
	OpMV_B_D byte = 0x11
	OpMV_C_A byte = 0x12
	OpMV_C_B byte = 0x13
	OpMV_C_C byte = 0x14
	OpMV_C_D byte = 0x15
	OpMV_D_A byte = 0x16
	OpMV_D_B byte = 0x17
	OpMV_D_C byte = 0x18
	OpMV_D_D byte = 0x19
	OpLD_A_IMM byte = 0x1a
	OpLD_B_IMM byte = 0x1b
	OpLD_C_IMM byte = 0x1c
	OpLD_D_IMM byte = 0x1d
	OpLD_A_ABS byte = 0x1e
	OpLD_A_REL_X_BY_IMM byte = 0x1f
	OpLD_A_REL_Y_BY_IMM byte = 0x20
	OpLD_A_REL_SP_BY_IMM byte = 0x21
	OpLD_A_REL_X_BY_A byte = 0x22
	OpLD_A_REL_X_BY_B byte = 0x23
	OpLD_A_REL_X_BY_C byte = 0x24
	OpLD_A_REL_X_BY_D byte = 0x25
	OpLD_A_REL_Y_BY_A byte = 0x26
	OpLD_A_REL_Y_BY_B byte = 0x27
	OpLD_A_REL_Y_BY_C byte = 0x28
	OpLD_A_REL_Y_BY_D byte = 0x29
	OpLD_A_REL_SP_BY_A byte = 0x2a
	OpLD_A_REL_SP_BY_B byte = 0x2b
	OpLD_A_REL_SP_BY_C byte = 0x2c
	OpLD_A_REL_SP_BY_D byte = 0x2d
	OpLD_B_ABS byte = 0x2e
	OpLD_B_REL_X_BY_IMM byte = 0x2f
	OpLD_B_REL_Y_BY_IMM byte = 0x30
	OpLD_B_REL_SP_BY_IMM byte = 0x31
	OpLD_B_REL_X_BY_A byte = 0x32
	OpLD_B_REL_X_BY_B byte = 0x33
	OpLD_B_REL_X_BY_C byte = 0x34
	OpLD_B_REL_X_BY_D byte = 0x35
	OpLD_B_REL_Y_BY_A byte = 0x36
	OpLD_B_REL_Y_BY_B byte = 0x37
	OpLD_B_REL_Y_BY_C byte = 0x38
	OpLD_B_REL_Y_BY_D byte = 0x39
	OpLD_B_REL_SP_BY_A byte = 0x3a
	OpLD_B_REL_SP_BY_B byte = 0x3b
	OpLD_B_REL_SP_BY_C byte = 0x3c
	OpLD_B_REL_SP_BY_D byte = 0x3d
	OpLD_C_ABS byte = 0x3e
	OpLD_C_REL_X_BY_IMM byte = 0x3f
	OpLD_C_REL_Y_BY_IMM byte = 0x40
	OpLD_C_REL_SP_BY_IMM byte = 0x41
	OpLD_C_REL_X_BY_A byte = 0x42
	OpLD_C_REL_X_BY_B byte = 0x43
	OpLD_C_REL_X_BY_C byte = 0x44
	OpLD_C_REL_X_BY_D byte = 0x45
	OpLD_C_REL_Y_BY_A byte = 0x46
	OpLD_C_REL_Y_BY_B byte = 0x47
	OpLD_C_REL_Y_BY_C byte = 0x48
	OpLD_C_REL_Y_BY_D byte = 0x49
	OpLD_C_REL_SP_BY_A byte = 0x4a
	OpLD_C_REL_SP_BY_B byte = 0x4b
	OpLD_C_REL_SP_BY_C byte = 0x4c
	OpLD_C_REL_SP_BY_D byte = 0x4d
	OpLD_D_ABS byte = 0x4e
	OpLD_D_REL_X_BY_IMM byte = 0x4f
	OpLD_D_REL_Y_BY_IMM byte = 0x50
	OpLD_D_REL_SP_BY_IMM byte = 0x51
	OpLD_D_REL_X_BY_A byte = 0x52
	OpLD_D_REL_X_BY_B byte = 0x53
	OpLD_D_REL_X_BY_C byte = 0x54
	OpLD_D_REL_X_BY_D byte = 0x55
	OpLD_D_REL_Y_BY_A byte = 0x56
	OpLD_D_REL_Y_BY_B byte = 0x57
	OpLD_D_REL_Y_BY_C byte = 0x58
	OpLD_D_REL_Y_BY_D byte = 0x59
	OpLD_D_REL_SP_BY_A byte = 0x5a
	OpLD_D_REL_SP_BY_B byte = 0x5b
	OpLD_D_REL_SP_BY_C byte = 0x5c
	OpLD_D_REL_SP_BY_D byte = 0x5d
	OpST_ABS_A byte = 0x5e
	OpST_REL_X_BY_IMM_A byte = 0x5f
	OpST_REL_Y_BY_IMM_A byte = 0x60
	OpST_REL_SP_BY_IMM_A byte = 0x61
	OpST_REL_X_BY_A_A byte = 0x62
	OpST_REL_X_BY_B_A byte = 0x63
	OpST_REL_X_BY_C_A byte = 0x64
	OpST_REL_X_BY_D_A byte = 0x65
	OpST_REL_Y_BY_A_A byte = 0x66
	OpST_REL_Y_BY_B_A byte = 0x67
	OpST_REL_Y_BY_C_A byte = 0x68
	OpST_REL_Y_BY_D_A byte = 0x69
	OpST_REL_SP_BY_A_A byte = 0x6a
	OpST_REL_SP_BY_B_A byte = 0x6b
	OpST_REL_SP_BY_C_A byte = 0x6c
	OpST_REL_SP_BY_D_A byte = 0x6d
	OpST_ABS_B byte = 0x6e
	OpST_REL_X_BY_IMM_B byte = 0x6f
	OpST_REL_Y_BY_IMM_B byte = 0x70
	OpST_REL_SP_BY_IMM_B byte = 0x71
	OpST_REL_X_BY_A_B byte = 0x72
	OpST_REL_X_BY_B_B byte = 0x73
	OpST_REL_X_BY_C_B byte = 0x74
	OpST_REL_X_BY_D_B byte = 0x75
	OpST_REL_Y_BY_A_B byte = 0x76
	OpST_REL_Y_BY_B_B byte = 0x77
	OpST_REL_Y_BY_C_B byte = 0x78
	OpST_REL_Y_BY_D_B byte = 0x79
	OpST_REL_SP_BY_A_B byte = 0x7a
	OpST_REL_SP_BY_B_B byte = 0x7b
	OpST_REL_SP_BY_C_B byte = 0x7c
	OpST_REL_SP_BY_D_B byte = 0x7d
	OpST_ABS_C byte = 0x7e
	OpST_REL_X_BY_IMM_C byte = 0x7f
	OpST_REL_Y_BY_IMM_C byte = 0x80
	OpST_REL_SP_BY_IMM_C byte = 0x81
	OpST_REL_X_BY_A_C byte = 0x82
	OpST_REL_X_BY_B_C byte = 0x83
	OpST_REL_X_BY_C_C byte = 0x84
	OpST_REL_X_BY_D_C byte = 0x85
	OpST_REL_Y_BY_A_C byte = 0x86
	OpST_REL_Y_BY_B_C byte = 0x87
	OpST_REL_Y_BY_C_C byte = 0x88
	OpST_REL_Y_BY_D_C byte = 0x89
	OpST_REL_SP_BY_A_C byte = 0x8a
	OpST_REL_SP_BY_B_C byte = 0x8b
	OpST_REL_SP_BY_C_C byte = 0x8c
	OpST_REL_SP_BY_D_C byte = 0x8d
	OpST_ABS_D byte = 0x8e
	OpST_REL_X_BY_IMM_D byte = 0x8f
	OpST_REL_Y_BY_IMM_D byte = 0x90
	OpST_REL_SP_BY_IMM_D byte = 0x91
	OpST_REL_X_BY_A_D byte = 0x92
	OpST_REL_X_BY_B_D byte = 0x93
	OpST_REL_X_BY_C_D byte = 0x94
	OpST_REL_X_BY_D_D byte = 0x95
	OpST_REL_Y_BY_A_D byte = 0x96
	OpST_REL_Y_BY_B_D byte = 0x97
	OpST_REL_Y_BY_C_D byte = 0x98
	OpST_REL_Y_BY_D_D byte = 0x99
	OpST_REL_SP_BY_A_D byte = 0x9a
	OpST_REL_SP_BY_B_D byte = 0x9b
	OpST_REL_SP_BY_C_D byte = 0x9c
	OpST_REL_SP_BY_D_D byte = 0x9d
	OpIN_A_PORT byte = 0x9e
	OpIN_A_REL_X_BY_IMM byte = 0x9f
	OpIN_A_REL_Y_BY_IMM byte = 0xa0
	OpIN_A_REL_X_BY_A byte = 0xa1
	OpIN_A_REL_X_BY_B byte = 0xa2
	OpIN_A_REL_X_BY_C byte = 0xa3
	OpIN_A_REL_X_BY_D byte = 0xa4
	OpIN_A_REL_Y_BY_A byte = 0xa5
	OpIN_A_REL_Y_BY_B byte = 0xa6
	OpIN_A_REL_Y_BY_C byte = 0xa7
	OpIN_A_REL_Y_BY_D byte = 0xa8
	OpIN_B_PORT byte = 0xa9
	OpIN_B_REL_X_BY_IMM byte = 0xaa
	OpIN_B_REL_Y_BY_IMM byte = 0xab
	OpIN_B_REL_X_BY_A byte = 0xac
	OpIN_B_REL_X_BY_B byte = 0xad
	OpIN_B_REL_X_BY_C byte = 0xae
	OpIN_B_REL_X_BY_D byte = 0xaf
	OpIN_B_REL_Y_BY_A byte = 0xb0
	OpIN_B_REL_Y_BY_B byte = 0xb1
	OpIN_B_REL_Y_BY_C byte = 0xb2
	OpIN_B_REL_Y_BY_D byte = 0xb3
	OpIN_C_PORT byte = 0xb4
	OpIN_C_REL_X_BY_IMM byte = 0xb5
	OpIN_C_REL_Y_BY_IMM byte = 0xb6
	OpIN_C_REL_X_BY_A byte = 0xb7
	OpIN_C_REL_X_BY_B byte = 0xb8
	OpIN_C_REL_X_BY_C byte = 0xb9
	OpIN_C_REL_X_BY_D byte = 0xba
	OpIN_C_REL_Y_BY_A byte = 0xbb
	OpIN_C_REL_Y_BY_B byte = 0xbc
	OpIN_C_REL_Y_BY_C byte = 0xbd
	OpIN_C_REL_Y_BY_D byte = 0xbe
	OpIN_D_PORT byte = 0xbf
	OpIN_D_REL_X_BY_IMM byte = 0xc0
	OpIN_D_REL_Y_BY_IMM byte = 0xc1
	OpIN_D_REL_X_BY_A byte = 0xc2
	OpIN_D_REL_X_BY_B byte = 0xc3
	OpIN_D_REL_X_BY_C byte = 0xc4
	OpIN_D_REL_X_BY_D byte = 0xc5
	OpIN_D_REL_Y_BY_A byte = 0xc6
	OpIN_D_REL_Y_BY_B byte = 0xc7
	OpIN_D_REL_Y_BY_C byte = 0xc8
	OpIN_D_REL_Y_BY_D byte = 0xc9
	OpOUT_PORT_A byte = 0xca
	OpOUT_REL_X_BY_IMM_A byte = 0xcb
	OpOUT_REL_Y_BY_IMM_A byte = 0xcc
	OpOUT_REL_X_BY_A_A byte = 0xcd
	OpOUT_REL_X_BY_B_A byte = 0xce
	OpOUT_REL_X_BY_C_A byte = 0xcf
	OpOUT_REL_X_BY_D_A byte = 0xd0
	OpOUT_REL_Y_BY_A_A byte = 0xd1
	OpOUT_REL_Y_BY_B_A byte = 0xd2
	OpOUT_REL_Y_BY_C_A byte = 0xd3
	OpOUT_REL_Y_BY_D_A byte = 0xd4
	OpOUT_PORT_B byte = 0xd5
	OpOUT_REL_X_BY_IMM_B byte = 0xd6
	OpOUT_REL_Y_BY_IMM_B byte = 0xd7
	OpOUT_REL_X_BY_A_B byte = 0xd8
	OpOUT_REL_X_BY_B_B byte = 0xd9
	OpOUT_REL_X_BY_C_B byte = 0xda
	OpOUT_REL_X_BY_D_B byte = 0xdb
	OpOUT_REL_Y_BY_A_B byte = 0xdc
	OpOUT_REL_Y_BY_B_B byte = 0xdd
	OpOUT_REL_Y_BY_C_B byte = 0xde
	OpOUT_REL_Y_BY_D_B byte = 0xdf
	OpOUT_PORT_C byte = 0xe0
	OpOUT_REL_X_BY_IMM_C byte = 0xe1
	OpOUT_REL_Y_BY_IMM_C byte = 0xe2
	OpOUT_REL_X_BY_A_C byte = 0xe3
	OpOUT_REL_X_BY_B_C byte = 0xe4
	OpOUT_REL_X_BY_C_C byte = 0xe5
	OpOUT_REL_X_BY_D_C byte = 0xe6
	OpOUT_REL_Y_BY_A_C byte = 0xe7
	OpOUT_REL_Y_BY_B_C byte = 0xe8
	OpOUT_REL_Y_BY_C_C byte = 0xe9
	OpOUT_REL_Y_BY_D_C byte = 0xea
	OpOUT_PORT_D byte = 0xeb
	OpOUT_REL_X_BY_IMM_D byte = 0xec
	OpOUT_REL_Y_BY_IMM_D byte = 0xed
	OpOUT_REL_X_BY_A_D byte = 0xee
	OpOUT_REL_X_BY_B_D byte = 0xef
	OpOUT_REL_X_BY_C_D byte = 0xf0
	OpOUT_REL_X_BY_D_D byte = 0xf1
	OpOUT_REL_Y_BY_A_D byte = 0xf2
	OpOUT_REL_Y_BY_B_D byte = 0xf3
	OpOUT_REL_Y_BY_C_D byte = 0xf4
	OpOUT_REL_Y_BY_D_D byte = 0xf5
	OpMV_X_SP byte = 0xf6
	OpMV_SP_X byte = 0xf7
	OpMV_X_X byte = 0xf8
	OpMV_X_Y byte = 0xf9
	OpMV_X_AB byte = 0xfa
	OpMV_X_CD byte = 0xfb
	OpMV_Y_X byte = 0xfc
	OpMV_Y_Y byte = 0xfd
	OpMV_Y_AB byte = 0xfe
	OpMV_Y_CD byte = 0xff
)

// Extended opcode byte constants (second byte after the 0x01 escape).
const (
	OpExtMV_AB_X byte = 0x00
	OpExtMV_AB_Y byte = 0x01
	OpExtMV_CD_X byte = 0x02
	OpExtMV_CD_Y byte = 0x03
	OpExtLD_X_IMM byte = 0x04
	OpExtLD_Y_IMM byte = 0x05
	OpExtLD_X_ABS byte = 0x06
	OpExtLD_X_REL_X_BY_IMM byte = 0x07
	OpExtLD_X_REL_Y_BY_IMM byte = 0x08
	OpExtLD_X_REL_SP_BY_IMM byte = 0x09
	OpExtLD_Y_ABS byte = 0x0a
	OpExtLD_Y_REL_X_BY_IMM byte = 0x0b
	OpExtLD_Y_REL_Y_BY_IMM byte = 0x0c
	OpExtLD_Y_REL_SP_BY_IMM byte = 0x0d
	OpExtST_ABS_X byte = 0x0e
	OpExtST_REL_X_BY_IMM_X byte = 0x0f
	OpExtST_REL_Y_BY_IMM_X byte = 0x10
	OpExtST_REL_SP_BY_IMM_X byte = 0x11
	OpExtST_ABS_Y byte = 0x12
	OpExtST_REL_X_BY_IMM_Y byte = 0x13
	OpExtST_REL_Y_BY_IMM_Y byte = 0x14
	OpExtST_REL_SP_BY_IMM_Y byte = 0x15
	OpExtLEA_X_BY_A byte = 0x16
	OpExtLEA_X_BY_B byte = 0x17
	OpExtLEA_X_BY_C byte = 0x18
	OpExtLEA_X_BY_D byte = 0x19
	OpExtLEA_X_BY_IMM byte = 0x1a
	OpExtLEA_Y_BY_A byte = 0x1b
	OpExtLEA_Y_BY_B byte = 0x1c
	OpExtLEA_Y_BY_C byte = 0x1d
	OpExtLEA_Y_BY_D byte = 0x1e
	OpExtLEA_Y_BY_IMM byte = 0x1f
	OpExtLEA_SP_BY_A byte = 0x20
	OpExtLEA_SP_BY_B byte = 0x21
	OpExtLEA_SP_BY_C byte = 0x22
	OpExtLEA_SP_BY_D byte = 0x23
	OpExtLEA_SP_BY_IMM byte = 0x24
	OpExtINC_X byte = 0x25
	OpExtINC_Y byte = 0x26
	OpExtDEC_X byte = 0x27
	OpExtDEC_Y byte = 0x28
	OpExtADDC_A_A byte = 0x29
	OpExtADDC_A_B byte = 0x2a
	OpExtADDC_A_C byte = 0x2b
	OpExtADDC_A_D byte = 0x2c
	OpExtADDC_B_A byte = 0x2d
	OpExtADDC_B_B byte = 0x2e
	OpExtADDC_B_C byte = 0x2f
	OpExtADDC_B_D byte = 0x30
	OpExtADDC_C_A byte = 0x31
	OpExtADDC_C_B byte = 0x32
	OpExtADDC_C_C byte = 0x33
	OpExtADDC_C_D byte = 0x34
	OpExtADDC_D_A byte = 0x35
	OpExtADDC_D_B byte = 0x36
	OpExtADDC_D_C byte = 0x37
	OpExtADDC_D_D byte = 0x38
	OpExtADDC_A_IMM byte = 0x39
	OpExtADDC_B_IMM byte = 0x3a
	OpExtADDC_C_IMM byte = 0x3b
	OpExtADDC_D_IMM byte = 0x3c
	OpExtSUBB_A_A byte = 0x3d
	OpExtSUBB_A_B byte = 0x3e
	OpExtSUBB_A_C byte = 0x3f
	OpExtSUBB_A_D byte = 0x40
	OpExtSUBB_B_A byte = 0x41
	OpExtSUBB_B_B byte = 0x42
	OpExtSUBB_B_C byte = 0x43
	OpExtSUBB_B_D byte = 0x44
	OpExtSUBB_C_A byte = 0x45
	OpExtSUBB_C_B byte = 0x46
	OpExtSUBB_C_C byte = 0x47
	OpExtSUBB_C_D byte = 0x48
	OpExtSUBB_D_A byte = 0x49
	OpExtSUBB_D_B byte = 0x4a
	OpExtSUBB_D_C byte = 0x4b
	OpExtSUBB_D_D byte = 0x4c
	OpExtSUBB_A_IMM byte = 0x4d
	OpExtSUBB_B_IMM byte = 0x4e
	OpExtSUBB_C_IMM byte = 0x4f
	OpExtSUBB_D_IMM byte = 0x50
	OpExtAND_A_A byte = 0x51
	OpExtAND_A_B byte = 0x52
	OpExtAND_A_C byte = 0x53
	OpExtAND_A_D byte = 0x54
	OpExtAND_B_A byte = 0x55
	OpExtAND_B_B byte = 0x56
	OpExtAND_B_C byte = 0x57
	OpExtAND_B_D byte = 0x58
	OpExtAND_C_A byte = 0x59
	OpExtAND_C_B byte = 0x5a
	OpExtAND_C_C byte = 0x5b
	OpExtAND_C_D byte = 0x5c
	OpExtAND_D_A byte = 0x5d
	OpExtAND_D_B byte = 0x5e
	OpExtAND_D_C byte = 0x5f
	OpExtAND_D_D byte = 0x60
	OpExtAND_A_IMM byte = 0x61
	OpExtAND_B_IMM byte = 0x62
	OpExtAND_C_IMM byte = 0x63
	OpExtAND_D_IMM byte = 0x64
	OpExtOR_A_A byte = 0x65
	OpExtOR_A_B byte = 0x66
	OpExtOR_A_C byte = 0x67
	OpExtOR_A_D byte = 0x68
	OpExtOR_B_A byte = 0x69
	OpExtOR_B_B byte = 0x6a
	OpExtOR_B_C byte = 0x6b
	OpExtOR_B_D byte = 0x6c
	OpExtOR_C_A byte = 0x6d
	OpExtOR_C_B byte = 0x6e
	OpExtOR_C_C byte = 0x6f
	OpExtOR_C_D byte = 0x70
	OpExtOR_D_A byte = 0x71
	OpExtOR_D_B byte = 0x72
	OpExtOR_D_C byte = 0x73
	OpExtOR_D_D byte = 0x74
	OpExtOR_A_IMM byte = 0x75
	OpExtOR_B_IMM byte = 0x76
	OpExtOR_C_IMM byte = 0x77
	OpExtOR_D_IMM byte = 0x78
	OpExtXOR_A_A byte = 0x79
	OpExtXOR_A_B byte = 0x7a
	OpExtXOR_A_C byte = 0x7b
	OpExtXOR_A_D byte = 0x7c
	OpExtXOR_B_A byte = 0x7d
	OpExtXOR_B_B byte = 0x7e
	OpExtXOR_B_C byte = 0x7f
	OpExtXOR_B_D byte = 0x80
	OpExtXOR_C_A byte = 0x81
	OpExtXOR_C_B byte = 0x82
	OpExtXOR_C_C byte = 0x83
	OpExtXOR_C_D byte = 0x84
	OpExtXOR_D_A byte = 0x85
	OpExtXOR_D_B byte = 0x86
	OpExtXOR_D_C byte = 0x87
	OpExtXOR_D_D byte = 0x88
	OpExtXOR_A_IMM byte = 0x89
	OpExtXOR_B_IMM byte = 0x8a
	OpExtXOR_C_IMM byte = 0x8b
	OpExtXOR_D_IMM byte = 0x8c
	OpExtSHL_A byte = 0x8d
	OpExtSHL_B byte = 0x8e
	OpExtSHL_C byte = 0x8f
	OpExtSHL_D byte = 0x90
	OpExtSHR_A byte = 0x91
	OpExtSHR_B byte = 0x92
	OpExtSHR_C byte = 0x93
	OpExtSHR_D byte = 0x94
	OpExtASR_A byte = 0x95
	OpExtASR_B byte = 0x96
	OpExtASR_C byte = 0x97
	OpExtASR_D byte = 0x98
	OpExtNOT_A byte = 0x99
	OpExtNOT_B byte = 0x9a
	OpExtNOT_C byte = 0x9b
	OpExtNOT_D byte = 0x9c
	OpExtNEG_A byte = 0x9d
	OpExtNEG_B byte = 0x9e
	OpExtNEG_C byte = 0x9f
	OpExtNEG_D byte = 0xa0
	OpExtINC_A byte = 0xa1
	OpExtINC_B byte = 0xa2
	OpExtINC_C byte = 0xa3
	OpExtINC_D byte = 0xa4
	OpExtDEC_A byte = 0xa5
	OpExtDEC_B byte = 0xa6
	OpExtDEC_C byte = 0xa7
	OpExtDEC_D byte = 0xa8
	OpExtCMP_A_A byte = 0xa9
	OpExtCMP_A_B byte = 0xaa
	OpExtCMP_A_C byte = 0xab
	OpExtCMP_A_D byte = 0xac
	OpExtCMP_B_A byte = 0xad
	OpExtCMP_B_B byte = 0xae
	OpExtCMP_B_C byte = 0xaf
	OpExtCMP_B_D byte = 0xb0
	OpExtCMP_C_A byte = 0xb1
	OpExtCMP_C_B byte = 0xb2
	OpExtCMP_C_C byte = 0xb3
	OpExtCMP_C_D byte = 0xb4
	OpExtCMP_D_A byte = 0xb5
	OpExtCMP_D_B byte = 0xb6
	OpExtCMP_D_C byte = 0xb7
	OpExtCMP_D_D byte = 0xb8
	OpExtCMP_A_IMM byte = 0xb9
	OpExtCMP_B_IMM byte = 0xba
	OpExtCMP_C_IMM byte = 0xbb
	OpExtCMP_D_IMM byte = 0xbc
	OpExtTEST_A byte = 0xbd
	OpExtTEST_B byte = 0xbe
	OpExtTEST_C byte = 0xbf
	OpExtTEST_D byte = 0xc0
	OpExtPUSH_A byte = 0xc1
	OpExtPUSH_B byte = 0xc2
	OpExtPUSH_C byte = 0xc3
	OpExtPUSH_D byte = 0xc4
	OpExtPUSH_X byte = 0xc5
	OpExtPUSH_Y byte = 0xc6
	OpExtPOP_A byte = 0xc7
	OpExtPOP_B byte = 0xc8
	OpExtPOP_C byte = 0xc9
	OpExtPOP_D byte = 0xca
	OpExtPOP_X byte = 0xcb
	OpExtPOP_Y byte = 0xcc
	OpExtCALL_PC_REL byte = 0xcd
	OpExtCALL_ABS byte = 0xce
	OpExtCALL_X_REL_IMM byte = 0xcf
	OpExtCALL_Y_REL_IMM byte = 0xd0
	OpExtRET byte = 0xd1
	OpExtSWI byte = 0xd2
	OpExtRETI byte = 0xd3
	OpExtJMP_PC_REL byte = 0xd4
	OpExtJMP_ABS byte = 0xd5
	OpExtJMP_X_REL_IMM byte = 0xd6
	OpExtJMP_Y_REL_IMM byte = 0xd7
	OpExtBR_EQ_PC_REL byte = 0xd8
	OpExtBR_EQ_ABS byte = 0xd9
	OpExtBR_EQ_X_REL_IMM byte = 0xda
	OpExtBR_EQ_Y_REL_IMM byte = 0xdb
	OpExtBR_NE_PC_REL byte = 0xdc
	OpExtBR_NE_ABS byte = 0xdd
	OpExtBR_NE_X_REL_IMM byte = 0xde
	OpExtBR_NE_Y_REL_IMM byte = 0xdf
	OpExtBR_LT_PC_REL byte = 0xe0
	OpExtBR_LT_ABS byte = 0xe1
	OpExtBR_LT_X_REL_IMM byte = 0xe2
	OpExtBR_LT_Y_REL_IMM byte = 0xe3
	OpExtBR_GT_PC_REL byte = 0xe4
	OpExtBR_GT_ABS byte = 0xe5
	OpExtBR_GT_X_REL_IMM byte = 0xe6
	OpExtBR_GT_Y_REL_IMM byte = 0xe7
	OpExtBR_LE_PC_REL byte = 0xe8
	OpExtBR_LE_ABS byte = 0xe9
	OpExtBR_LE_X_REL_IMM byte = 0xea
	OpExtBR_LE_Y_REL_IMM byte = 0xeb
	OpExtBR_GE_PC_REL byte = 0xec
	OpExtBR_GE_ABS byte = 0xed
	OpExtBR_GE_X_REL_IMM byte = 0xee
	OpExtBR_GE_Y_REL_IMM byte = 0xef
	OpExtBR_LTS_PC_REL byte = 0xf0
	OpExtBR_LTS_ABS byte = 0xf1
	OpExtBR_LTS_X_REL_IMM byte = 0xf2
	OpExtBR_LTS_Y_REL_IMM byte = 0xf3
	OpExtBR_GTS_PC_REL byte = 0xf4
	OpExtBR_GTS_ABS byte = 0xf5
	OpExtBR_GTS_X_REL_IMM byte = 0xf6
	OpExtBR_GTS_Y_REL_IMM byte = 0xf7
	OpExtBR_LES_PC_REL byte = 0xf8
	OpExtBR_LES_ABS byte = 0xf9
	OpExtBR_LES_X_REL_IMM byte = 0xfa
	OpExtBR_LES_Y_REL_IMM byte = 0xfb
	OpExtBR_GES_PC_REL byte = 0xfc
	OpExtBR_GES_ABS byte = 0xfd
	OpExtBR_GES_X_REL_IMM byte = 0xfe
	OpExtBR_GES_Y_REL_IMM byte = 0xff
)
