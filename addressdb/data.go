// This file is part of PrimeHack.
//
// PrimeHack is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PrimeHack is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PrimeHack.  If not, see <https://www.gnu.org/licenses/>.

package addressdb

import "github.com/primehack/primehack/game"

// Init adds the address tables for all supported games to the database.
func Init(db *DB) {
	rt0 := All(0)

	db.RegisterAddress(game.Prime1, "arm_cannon_matrix", 0x804c10ec, 0x804c502c, 0x804c136c)
	db.RegisterAddress(game.Prime1, "state_manager", 0x804bf420, 0x804c3360, 0x804bf6a0)
	db.RegisterAddress(game.Prime1, "static_fov_fp", 0x805c0e38, 0x805c5178, 0x80641138)
	db.RegisterAddress(game.Prime1, "static_fov_tp", 0x805c0e3c, 0x805c517c, 0x8064113c)
	db.RegisterAddress(game.Prime1, "gun_pos", 0x804ddae4, 0x804e1a24, 0x804d398c)
	db.RegisterAddress(game.Prime1, "control_flag", 0x8052e9b8, 0x80532b38, 0x805aecb8)
	db.RegisterAddress(game.Prime1, "tweakplayer", 0x804ddff8, 0x804e1f38, 0x804de278)
	db.RegisterAddress(game.Prime1, "beamvisor_menu_base", 0x805c28b0, 0x805c6c34, 0x80642b98)
	db.RegisterAddress(game.Prime1, "cursor_base", 0x805c28a8, 0x805c6c2c, 0x80642b90)
	db.RegisterAddress(game.Prime1, "powerups_array_base", 0x804bfcd4, 0x804c3c14, 0x804bff54)
	db.RegisterAddress(game.Prime1, "powerups_size", 8, 8, 8)
	db.RegisterAddress(game.Prime1, "powerups_offset", 0x30, 0x30, 0x30)
	db.RegisterAddress(game.Prime1, "holster_timer_offset", 0x4, 0x4, 0x4)
	db.RegisterAddress(game.Prime1, "transform_offset", 0x2c, 0x2c, 0x2c)
	db.RegisterDynamicAddress(game.Prime1, "object_list", "state_manager", All(0x810), rt0)
	db.RegisterDynamicAddress(game.Prime1, "menu_state", "state_manager", All(0x117C))
	db.RegisterDynamicAddress(game.Prime1, "player", "state_manager", All(0x84c), rt0)
	db.RegisterDynamicAddress(game.Prime1, "firstperson_pitch", "player", All(0x3dc))
	db.RegisterDynamicAddress(game.Prime1, "angular_momentum", "player", All(0x118))
	db.RegisterDynamicAddress(game.Prime1, "angular_vel", "player", All(0x154))
	db.RegisterDynamicAddress(game.Prime1, "ball_state", "player", All(0x2f4))
	db.RegisterDynamicAddress(game.Prime1, "orbit_state", "player", All(0x300))
	db.RegisterDynamicAddress(game.Prime1, "lockon_state", "state_manager", All(0xc93))
	db.RegisterDynamicAddress(game.Prime1, "powerups_list", "state_manager", All(0x8b4), rt0)
	db.RegisterDynamicAddress(game.Prime1, "camera_manager", "state_manager", All(0x868), rt0)
	db.RegisterDynamicAddress(game.Prime1, "cursor", "cursor_base", rt0, Triple(0xc54, 0xd04, 0xc54), rt0)
	db.RegisterDynamicAddress(game.Prime1, "beamvisor_menu_state", "beamvisor_menu_base", rt0, Triple(0x32c, 0x32c, 0x338))
	db.RegisterDynamicAddress(game.Prime1, "beamvisor_menu_mode", "beamvisor_menu_base", rt0, Triple(0x334, 0x334, 0x340))
	db.RegisterDynamicAddress(game.Prime1, "powerups_array", "powerups_array_base", rt0, rt0)
	db.RegisterDynamicAddress(game.Prime1, "active_visor", "powerups_array", All(0x1c))
	db.RegisterDynamicAddress(game.Prime1, "gun_holster_state", "player", All(0x488))

	// the GCN tables have no NTSC-J values unless stated
	db.RegisterAddress(game.Prime1GCN, "state_manager", 0x8045a1a8, 0x803e2088)
	db.RegisterAddress(game.Prime1GCN, "fov_fp_offset", -0x7ff0, -0x7fe8)
	db.RegisterAddress(game.Prime1GCN, "fov_tp_offset", -0x7fec, -0x7fe4)
	db.RegisterAddress(game.Prime1GCN, "gun_pos", 0x8045bce8, 0x803e3c14)
	db.RegisterAddress(game.Prime1GCN, "tweak_player", 0x8045c208, 0x803e4134)
	db.RegisterAddress(game.Prime1GCN, "grapple_swing_speed_offset", 0x2b0, 0x2b0)
	db.RegisterAddress(game.Prime1GCN, "crosshair_color", 0x8045b678, 0x803e35a4)
	db.RegisterAddress(game.Prime1GCN, "transform_offset", 0x34, 0x34)
	db.RegisterDynamicAddress(game.Prime1GCN, "world", "state_manager", All(0x850), rt0)
	db.RegisterDynamicAddress(game.Prime1GCN, "player", "state_manager", All(0x84c), rt0)
	db.RegisterDynamicAddress(game.Prime1GCN, "camera_manager", "state_manager", All(0x86c), rt0)
	db.RegisterDynamicAddress(game.Prime1GCN, "object_list", "state_manager", All(0x810), rt0)
	db.RegisterDynamicAddress(game.Prime1GCN, "menu_state", "state_manager", All(0xf90))
	db.RegisterDynamicAddress(game.Prime1GCN, "player_xf", "player", All(0x34))
	db.RegisterDynamicAddress(game.Prime1GCN, "orbit_state", "player", Triple(0x304, 0x314, 0))
	db.RegisterDynamicAddress(game.Prime1GCN, "angular_vel", "player", Triple(0x14c, 0x15c, 0))
	db.RegisterDynamicAddress(game.Prime1GCN, "firstperson_pitch", "player", Triple(0x3ec, 0x3fc, 0))
	db.RegisterDynamicAddress(game.Prime1GCN, "camera_state", "player", Triple(0x2f4, 0x304, 0))
	db.RegisterDynamicAddress(game.Prime1GCN, "move_state", "player", Triple(0x258, 0x268, 0))
	db.RegisterDynamicAddress(game.Prime1GCN, "freelook_rotation_speed", "tweak_player", All(0x280))
	db.RegisterDynamicAddress(game.Prime1GCN, "air_transitional_friction", "tweak_player", All(0x180))

	db.RegisterAddress(game.Prime1GCNR1, "state_manager", 0x8045a388)
	db.RegisterAddress(game.Prime1GCNR1, "fov_fp_offset", -0x7ff0)
	db.RegisterAddress(game.Prime1GCNR1, "fov_tp_offset", -0x7fec)
	db.RegisterAddress(game.Prime1GCNR1, "gun_pos", 0x8045bec8)
	db.RegisterAddress(game.Prime1GCNR1, "tweak_player", 0x8045c3e8)
	// the R1 table has no grapple swing speed. the value for R2 is registered
	// here and again in the R2 table
	db.RegisterAddress(game.Prime1GCNR2, "grapple_swing_speed_offset", 0x2b0)
	db.RegisterAddress(game.Prime1GCNR1, "crosshair_color", 0x8045b698)
	db.RegisterAddress(game.Prime1GCNR1, "transform_offset", 0x34)
	db.RegisterDynamicAddress(game.Prime1GCNR1, "world", "state_manager", All(0x850), rt0)
	db.RegisterDynamicAddress(game.Prime1GCNR1, "player", "state_manager", All(0x84c), rt0)
	db.RegisterDynamicAddress(game.Prime1GCNR1, "camera_manager", "state_manager", All(0x86c), rt0)
	db.RegisterDynamicAddress(game.Prime1GCNR1, "object_list", "state_manager", All(0x810), rt0)
	db.RegisterDynamicAddress(game.Prime1GCNR1, "menu_state", "state_manager", All(0xf90))
	db.RegisterDynamicAddress(game.Prime1GCNR1, "player_xf", "player", All(0x34))
	db.RegisterDynamicAddress(game.Prime1GCNR1, "orbit_state", "player", All(0x304))
	db.RegisterDynamicAddress(game.Prime1GCNR1, "angular_vel", "player", All(0x14c))
	db.RegisterDynamicAddress(game.Prime1GCNR1, "firstperson_pitch", "player", All(0x3ec))
	db.RegisterDynamicAddress(game.Prime1GCNR1, "camera_state", "player", All(0x2f4))
	db.RegisterDynamicAddress(game.Prime1GCNR1, "move_state", "player", All(0x258))
	db.RegisterDynamicAddress(game.Prime1GCNR1, "freelook_rotation_speed", "tweak_player", All(0x280))
	db.RegisterDynamicAddress(game.Prime1GCNR1, "air_transitional_friction", "tweak_player", All(0x180))

	db.RegisterAddress(game.Prime1GCNR2, "state_manager", 0x8045b208)
	db.RegisterAddress(game.Prime1GCNR2, "fov_fp_offset", -0x7ff0)
	db.RegisterAddress(game.Prime1GCNR2, "fov_tp_offset", -0x7fec)
	db.RegisterAddress(game.Prime1GCNR2, "gun_pos", 0x8045cd48)
	db.RegisterAddress(game.Prime1GCNR2, "tweak_player", 0x8045d268)
	db.RegisterAddress(game.Prime1GCNR2, "grapple_swing_speed_offset", 0x2b0)
	db.RegisterAddress(game.Prime1GCNR2, "crosshair_color", 0x8045c6d8)
	db.RegisterAddress(game.Prime1GCNR2, "transform_offset", 0x34)
	db.RegisterDynamicAddress(game.Prime1GCNR2, "world", "state_manager", All(0x850), rt0)
	db.RegisterDynamicAddress(game.Prime1GCNR2, "player", "state_manager", All(0x84c), rt0)
	db.RegisterDynamicAddress(game.Prime1GCNR2, "camera_manager", "state_manager", All(0x86c), rt0)
	db.RegisterDynamicAddress(game.Prime1GCNR2, "object_list", "state_manager", All(0x810), rt0)
	db.RegisterDynamicAddress(game.Prime1GCNR2, "menu_state", "state_manager", All(0xf90))
	db.RegisterDynamicAddress(game.Prime1GCNR2, "player_xf", "player", All(0x34))
	db.RegisterDynamicAddress(game.Prime1GCNR2, "orbit_state", "player", All(0x314))
	db.RegisterDynamicAddress(game.Prime1GCNR2, "angular_vel", "player", All(0x15c))
	db.RegisterDynamicAddress(game.Prime1GCNR2, "firstperson_pitch", "player", All(0x3fc))
	db.RegisterDynamicAddress(game.Prime1GCNR2, "camera_state", "player", All(0x304))
	db.RegisterDynamicAddress(game.Prime1GCNR2, "move_state", "player", All(0x268))
	db.RegisterDynamicAddress(game.Prime1GCNR2, "freelook_rotation_speed", "tweak_player", All(0x280))
	db.RegisterDynamicAddress(game.Prime1GCNR2, "air_transitional_friction", "tweak_player", All(0x180))

	db.RegisterAddress(game.Prime2, "state_manager", 0x804e72e8, 0x804ee738, 0x804e94a0)
	db.RegisterAddress(game.Prime2, "tweakgun", 0x805cb274, 0x805d2cdc, 0x805cba54)
	db.RegisterAddress(game.Prime2, "world_id_ptr", 0x805081cc, 0x8050f76c)
	db.RegisterAddress(game.Prime2, "control_flag", 0x805373f8, 0x8053ebf8, 0x80537bb8)
	db.RegisterAddress(game.Prime2, "beamvisor_menu_base", 0x805cb314, 0x805d2d80, 0x805cbaec)
	db.RegisterAddress(game.Prime2, "cursor_base", 0x805cb2c8, 0x805d2d30, 0x805cbaa0)
	db.RegisterAddress(game.Prime2, "tweak_player_offset", -0x6410, -0x6368, -0x63f8)
	db.RegisterAddress(game.Prime2, "powerups_size", 12, 12, 12)
	db.RegisterAddress(game.Prime2, "powerups_offset", 0x5c, 0x5c, 0x5c)
	db.RegisterAddress(game.Prime2, "conn_vec_offset", 0x10, 0x10, 0x10)
	db.RegisterAddress(game.Prime2, "seq_timer_vec_offset", 0x34, 0x34, 0x34)
	db.RegisterAddress(game.Prime2, "seq_timer_fire_size", 0x14, 0x14, 0x14)
	db.RegisterAddress(game.Prime2, "seq_timer_time_offset", 0xc, 0xc, 0xc)
	db.RegisterAddress(game.Prime2, "holster_timer_offset", -0x20, -0x20, -0x20)
	db.RegisterAddress(game.Prime2, "transform_offset", 0x20, 0x20, 0x20)
	db.RegisterDynamicAddress(game.Prime2, "player", "state_manager", All(0x14f4), rt0)
	db.RegisterDynamicAddress(game.Prime2, "object_list", "state_manager", All(0x810), rt0)
	db.RegisterDynamicAddress(game.Prime2, "menu_state", "state_manager", All(0x2C0C))
	db.RegisterDynamicAddress(game.Prime2, "camera_manager", "state_manager", All(0x1514), All(0x10))
	db.RegisterDynamicAddress(game.Prime2, "load_state", "state_manager", All(0x153c))
	db.RegisterDynamicAddress(game.Prime2, "beamvisor_menu_state", "beamvisor_menu_base", rt0, All(0x340))
	db.RegisterDynamicAddress(game.Prime2, "beamvisor_menu_mode", "beamvisor_menu_base", rt0, All(0x34c))
	db.RegisterDynamicAddress(game.Prime2, "orbit_state", "player", All(0x390))
	db.RegisterDynamicAddress(game.Prime2, "lockon_state", "state_manager", All(0x1667))
	db.RegisterDynamicAddress(game.Prime2, "cursor", "cursor_base", rt0, Triple(0xc54, 0xd04, 0xc54), rt0)
	db.RegisterDynamicAddress(game.Prime2, "angular_momentum", "player", All(0x178))
	db.RegisterDynamicAddress(game.Prime2, "firstperson_pitch", "player", All(0x5f0))
	db.RegisterDynamicAddress(game.Prime2, "armcannon_matrix", "player", All(0xea8), All(0x3b0))
	db.RegisterDynamicAddress(game.Prime2, "ball_state", "player", All(0x374))
	db.RegisterDynamicAddress(game.Prime2, "powerups_array", "player", All(0x12ec), rt0)
	db.RegisterDynamicAddress(game.Prime2, "active_visor", "powerups_array", All(0x34))
	db.RegisterDynamicAddress(game.Prime2, "world_id", "world_id_ptr", rt0, rt0)
	db.RegisterDynamicAddress(game.Prime2, "area_id", "state_manager", All(0x1e44))
	db.RegisterDynamicAddress(game.Prime2, "area_layers_vector", "state_manager", All(0x1e38), All(0x8), rt0)
	// holster state is in CPlayer for Prime 1 but in a separate class for Prime 2
	db.RegisterDynamicAddress(game.Prime2, "gun_holster_state", "player", All(0xEA8), All(0x3A4))

	db.RegisterAddress(game.Prime2GCN, "state_manager", 0x803db6e0, 0x803dc900, 0x803de690)
	db.RegisterAddress(game.Prime2GCN, "tweakgun_offset", -0x6e1c, -0x6e14, -0x6ddc)
	db.RegisterAddress(game.Prime2GCN, "tweak_player_offset", -0x6e3c, -0x6e34, -0x6dfc)
	db.RegisterAddress(game.Prime2GCN, "tweakgui_offset", -0x6e20, -0x6e18, -0x6de0)
	db.RegisterAddress(game.Prime2GCN, "conn_vec_offset", 0x14, 0x14, 0x14)
	db.RegisterAddress(game.Prime2GCN, "seq_timer_vec_offset", 0x3c, 0x3c, 0x3c)
	db.RegisterAddress(game.Prime2GCN, "seq_timer_fire_size", 0x18, 0x18, 0x18)
	db.RegisterAddress(game.Prime2GCN, "seq_timer_time_offset", 0x10, 0x10, 0x10)
	db.RegisterAddress(game.Prime2GCN, "transform_offset", 0x24, 0x24, 0x24)
	db.RegisterDynamicAddress(game.Prime2GCN, "camera_manager", "state_manager", All(0x151c), All(0x14))
	db.RegisterDynamicAddress(game.Prime2GCN, "object_list", "state_manager", All(0x810), rt0)
	db.RegisterDynamicAddress(game.Prime2GCN, "world", "state_manager", All(0x1604), rt0)
	db.RegisterDynamicAddress(game.Prime2GCN, "player", "state_manager", All(0x14fc), rt0)
	db.RegisterDynamicAddress(game.Prime2GCN, "menu_state", "state_manager", All(0x2470))
	db.RegisterDynamicAddress(game.Prime2GCN, "player_xf", "player", All(0x24))
	db.RegisterDynamicAddress(game.Prime2GCN, "orbit_state", "player", All(0x3a4))
	db.RegisterDynamicAddress(game.Prime2GCN, "firstperson_pitch", "player", All(0x604))
	db.RegisterDynamicAddress(game.Prime2GCN, "ball_state", "player", All(0x38c))
	db.RegisterDynamicAddress(game.Prime2GCN, "angular_vel", "player", All(0x1bc))
	db.RegisterDynamicAddress(game.Prime2GCN, "world_id", "world", All(0x8))
	db.RegisterDynamicAddress(game.Prime2GCN, "area_id", "state_manager", All(0x16a0))
	db.RegisterDynamicAddress(game.Prime2GCN, "area_layers_vector", "state_manager", All(0x1694), All(0xc), rt0)

	db.RegisterAddress(game.Prime3, "state_manager", 0x805c6c68, 0x805ca0e8)
	db.RegisterAddress(game.Prime3, "tweakgun", 0x8066f87c, 0x806730fc)
	db.RegisterAddress(game.Prime3, "motion_vf", 0x802e0dac, 0x802e0a88)
	db.RegisterAddress(game.Prime3, "dna_scanner_vftable", 0x8059b700, 0x8059e160)
	db.RegisterAddress(game.Prime3, "cursor_base", 0x8066fd08, 0x80673588)
	db.RegisterAddress(game.Prime3, "cursor_dlg_enabled", 0x805c8d77, 0x805cc1d7)
	db.RegisterAddress(game.Prime3, "boss_info_base", 0x8066e1ec, 0x80671a6c)
	db.RegisterAddress(game.Prime3, "beamvisor_menu_base", 0x8066fcfc, 0x8067357c)
	db.RegisterAddress(game.Prime3, "lockon_state", 0x805c6db7, 0x805ca237)
	db.RegisterAddress(game.Prime3, "gun_lag_toc_offset", -0x5ff0, -0x6000)
	db.RegisterAddress(game.Prime3, "powerups_size", 12, 12, 12)
	db.RegisterAddress(game.Prime3, "powerups_offset", 0x58, 0x58, 0x58)
	db.RegisterAddress(game.Prime3, "bloom_offset", 0x8058b018, 0x8058da58)
	db.RegisterDynamicAddress(game.Prime3, "camera_manager", "state_manager", All(0x10), All(0xc), All(0x16))
	db.RegisterDynamicAddress(game.Prime3, "perspective_info", "camera_manager", All(0x2), All(0x14), rt0)
	db.RegisterDynamicAddress(game.Prime3, "object_list", "state_manager", rt0, All(0x1010), rt0)
	db.RegisterDynamicAddress(game.Prime3, "menu_state", "state_manager", All(0x32C))
	db.RegisterDynamicAddress(game.Prime3, "player", "state_manager", rt0, All(0x2184), rt0)
	db.RegisterDynamicAddress(game.Prime3, "cursor", "cursor_base", rt0, Triple(0xc54, 0xd04, 0xc54), rt0)
	db.RegisterDynamicAddress(game.Prime3, "powerups_array", "player", All(0x35a8), rt0)
	db.RegisterDynamicAddress(game.Prime3, "boss_name", "boss_info_base", rt0, All(0x6e0), All(0x24), All(0x150), rt0)
	db.RegisterDynamicAddress(game.Prime3, "boss_status", "boss_info_base", rt0, All(0x6e0), All(0x24), All(0xb3))
	db.RegisterDynamicAddress(game.Prime3, "firstperson_pitch", "player", All(0x784))
	db.RegisterDynamicAddress(game.Prime3, "active_visor", "powerups_array", All(0x34))
	db.RegisterDynamicAddress(game.Prime3, "beamvisor_menu_state", "beamvisor_menu_base", rt0, All(0x300))
	db.RegisterDynamicAddress(game.Prime3, "angular_momentum", "player", All(0x174))
	db.RegisterDynamicAddress(game.Prime3, "ball_state", "player", All(0x358))
	db.RegisterDynamicAddress(game.Prime3, "lockon_type", "player", All(0x370))
	db.RegisterDynamicAddress(game.Prime3, "audio_manager", "state_manager", All(0x250), rt0)
	db.RegisterDynamicAddress(game.Prime3, "audio_fadein_time", "audio_manager", All(0x308))
	db.RegisterDynamicAddress(game.Prime3, "audio_fade_mode", "audio_manager", All(0x310))

	db.RegisterAddress(game.Prime3Standalone, "state_manager", 0x805c4f98, 0x805c7598, 0x805caa58)
	db.RegisterAddress(game.Prime3Standalone, "tweakgun", 0x8067d78c, 0x8067fdb4, 0x806835fc)
	db.RegisterAddress(game.Prime3Standalone, "motion_vf", 0x802e2508, 0x802e3be4, 0x802e5ed8)
	db.RegisterAddress(game.Prime3Standalone, "dna_scanner_vftable", 0x80599b50, 0x8059c140, 0x8059f580)
	db.RegisterAddress(game.Prime3Standalone, "cursor_base", 0x8067dc18, 0x80680240, 0x80683a88)
	db.RegisterAddress(game.Prime3Standalone, "cursor_dlg_enabled", 0x805c70c7, 0x805c96df, 0x805ccbd7)
	db.RegisterAddress(game.Prime3Standalone, "boss_info_base", 0x8067c0e4, 0x8067e70c, 0x80681f54)
	db.RegisterAddress(game.Prime3Standalone, "beamvisor_menu_base", 0x8067dc0c, 0x80680234, 0x80683a7c)
	db.RegisterAddress(game.Prime3Standalone, "lockon_state", 0x805c50e7, 0x805c76e7, 0x805caba7)
	db.RegisterAddress(game.Prime3Standalone, "gun_lag_toc_offset", -0x5fb0, -0x5f98, -0x5f68)
	db.RegisterAddress(game.Prime3Standalone, "powerups_size", 12, 12, 12)
	db.RegisterAddress(game.Prime3Standalone, "powerups_offset", 0x58, 0x58, 0x58)
	db.RegisterAddress(game.Prime3Standalone, "bloom_offset", 0x80589410, 0x8058b9d8, 0x8058edd8)
	db.RegisterDynamicAddress(game.Prime3Standalone, "camera_manager", "state_manager", All(0x10), All(0xc), All(0x16))
	db.RegisterDynamicAddress(game.Prime3Standalone, "perspective_info", "camera_manager", All(0x2), All(0x14), rt0)
	db.RegisterDynamicAddress(game.Prime3Standalone, "object_list", "state_manager", rt0, All(0x1010), rt0)
	db.RegisterDynamicAddress(game.Prime3Standalone, "menu_state", "state_manager", All(0x32C))
	db.RegisterDynamicAddress(game.Prime3Standalone, "player", "state_manager", rt0, All(0x2184), rt0)
	db.RegisterDynamicAddress(game.Prime3Standalone, "cursor", "cursor_base", rt0, All(0xc54), rt0)
	db.RegisterDynamicAddress(game.Prime3Standalone, "powerups_array", "player", Triple(0x35a0, 0x35a0, 0x35a8), rt0)
	db.RegisterDynamicAddress(game.Prime3Standalone, "boss_name", "boss_info_base", rt0, All(0x6e0), All(0x24), All(0x150), rt0)
	db.RegisterDynamicAddress(game.Prime3Standalone, "boss_status", "boss_info_base", rt0, All(0x6e0), All(0x24), All(0xb3))
	db.RegisterDynamicAddress(game.Prime3Standalone, "firstperson_pitch", "player", Triple(0x77c, 0x77c, 0x784))
	db.RegisterDynamicAddress(game.Prime3Standalone, "beamvisor_menu_state", "beamvisor_menu_base", rt0, All(0x1708))
	db.RegisterDynamicAddress(game.Prime3Standalone, "active_visor", "powerups_array", All(0x34))
	db.RegisterDynamicAddress(game.Prime3Standalone, "angular_momentum", "player", All(0x174))
	db.RegisterDynamicAddress(game.Prime3Standalone, "ball_state", "player", All(0x358))
	db.RegisterDynamicAddress(game.Prime3Standalone, "lockon_type", "player", All(0x370))
	db.RegisterDynamicAddress(game.Prime3Standalone, "audio_manager", "state_manager", All(0x250), rt0)
	db.RegisterDynamicAddress(game.Prime3Standalone, "audio_fadein_time", "audio_manager", All(0x308))
	db.RegisterDynamicAddress(game.Prime3Standalone, "audio_fade_mode", "audio_manager", All(0x310))
}
